// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS. 0 — «нет сущности».
type EntityID uint64
