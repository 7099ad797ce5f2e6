package http

import "github.com/geekpro798/rivetly-backend/internal/rules/domain"

type customConstraintReq struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type selectionReq struct {
	Mode              string                `json:"mode"`
	SelectedIDs       []string              `json:"selected_ids"`
	CustomConstraints []customConstraintReq `json:"custom_constraints"`
	Platform          string                `json:"platform"`
	Locale            string                `json:"locale"`
}

func (r selectionReq) toSelection() domain.Selection {
	custom := make([]domain.CustomConstraint, 0, len(r.CustomConstraints))
	for _, c := range r.CustomConstraints {
		custom = append(custom, domain.CustomConstraint{ID: c.ID, Label: c.Label, Prompt: c.Prompt})
	}
	return domain.Selection{
		ModeID:            r.Mode,
		SelectedIDs:       r.SelectedIDs,
		CustomConstraints: custom,
		PlatformID:        r.Platform,
		Locale:            r.Locale,
	}
}

type restoreReq struct {
	Content string `json:"content"`
}

type newCustomReq struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

type constraintResp struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

type modeResp struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Recommended []string `json:"recommended_constraint_ids"`
}
