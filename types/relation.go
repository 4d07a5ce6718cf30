package types

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// ToggleResult 关系切换结果，Row 为被创建或被删除的关系行
type ToggleResult struct {
	Action string `json:"action"`
	Row    any    `json:"row"`
}

// CascadeResult 级联删除结果，按记录类型计数
type CascadeResult struct {
	Deleted map[string]int64 `json:"deleted_counts"`
}
