package service

// ServiceConfig Service 层配置
type ServiceConfig struct {
	Admin AdminServiceConfig
}

// AdminServiceConfig 管理员凭据配置
type AdminServiceConfig struct {
	Username string
	Password string
}
