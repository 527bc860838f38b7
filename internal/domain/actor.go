package domain

// Actor 请求方身份
// 系统只区分两类角色：匿名访客与唯一管理员
type Actor int

const (
	// ActorAnonymous 匿名访客
	ActorAnonymous Actor = iota
	// ActorAdmin 管理员
	ActorAdmin
)

// IsAdmin 判断是否为管理员
func (a Actor) IsAdmin() bool {
	return a == ActorAdmin
}

// ActorFromIsAdmin 从布尔标记构造 Actor
func ActorFromIsAdmin(isAdmin bool) Actor {
	if isAdmin {
		return ActorAdmin
	}
	return ActorAnonymous
}

func (a Actor) String() string {
	if a.IsAdmin() {
		return "admin"
	}
	return "anonymous"
}
