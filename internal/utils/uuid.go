package utils

import "github.com/google/uuid"

// UUIDGenerator issues the opaque string ids used for accounts and
// verification records.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. Version 7 ids are time-ordered, so freshly
// inserted verification rows cluster roughly by timestamp in the primary
// key index. If the clock-based generator fails, a random v4 id is issued
// instead; callers only rely on uniqueness, not on ordering.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
