package model

import "github.com/google/uuid"

// GroupGenerationResult — підсумок генерації по одній групі
type GroupGenerationResult struct {
	GroupID   int64  `json:"groupId"`
	GroupName string `json:"groupName"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed,omitempty"`
	Error     string `json:"error,omitempty"`
}

// GenerationReport — підсумок одного запуску генерації розкладу
type GenerationReport struct {
	RunID          uuid.UUID               `json:"runId"`
	WeeksAhead     int                     `json:"weeksAhead"`
	TotalGenerated int                     `json:"totalGenerated"`
	TotalSkipped   int                     `json:"totalSkipped"`
	TotalFailed    int                     `json:"totalFailed,omitempty"`
	Summary        string                  `json:"summary"`
	Groups         []GroupGenerationResult `json:"groups"`
}
