package employee

import "time"

// Employee は社員エンティティです。所属会社は CompanyID で参照します。
type Employee struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
