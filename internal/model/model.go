// Package model gorm 数据表模型
package model

import (
	"gorm.io/gorm"
)

// MigrateList 需要自动迁移的表模型
func MigrateList() []any {
	return []any{
		&Note{},
		&Folder{},
	}
}

// AutoMigrate 按模型列表建表
func AutoMigrate(db *gorm.DB) error {
	for _, m := range MigrateList() {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}
