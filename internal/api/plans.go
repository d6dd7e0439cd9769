package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

// ObjetivoAprendizaje fetches a learning objective with its Bloom
// objectives.
func (c *Client) ObjetivoAprendizaje(ctx context.Context, oaID int64) (*ObjetivoAprendizaje, error) {
	var out ObjetivoAprendizaje
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/objetivos-aprendizaje/%s", oaID),
		fallback: "Failed to fetch learning objective",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ObjetivosByMateria lists the active learning objectives of a subject.
func (c *Client) ObjetivosByMateria(ctx context.Context, materiaID int64) ([]ObjetivoAprendizaje, error) {
	var out []ObjetivoAprendizaje
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   "/api/objetivos-aprendizaje",
		query: url.Values{
			"materia_id": {strconv.FormatInt(materiaID, 10)},
			"activo":     {"true"},
		},
		fallback: "Failed to fetch learning objectives",
	}, &out)
	return out, err
}

// BloomObjectiveID returns the id of the Bloom objective of oaID at
// bloomLevel. ok is false when the objective has no such level.
func (c *Client) BloomObjectiveID(ctx context.Context, oaID int64, bloomLevel int) (id int64, ok bool, err error) {
	oa, err := c.ObjetivoAprendizaje(ctx, oaID)
	if err != nil {
		return 0, false, err
	}
	for _, bo := range oa.BloomObjectives {
		if bo.BloomLevelID == bloomLevel {
			return bo.ID, true, nil
		}
	}
	return 0, false, nil
}

// PlanByOA returns the plan generated for a Bloom objective, or nil when
// none exists yet.
func (c *Client) PlanByOA(ctx context.Context, bloomObjectiveID int64) (*LearningPlan, error) {
	var out LearningPlan
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/learning-plans/by-oa/%s", bloomObjectiveID),
		fallback: "Failed to get learning plan",
	}, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePlan asks the backend to build the structure of a new plan.
// Component content is generated separately.
func (c *Client) GeneratePlan(ctx context.Context, bloomObjectiveID int64) (*LearningPlan, error) {
	var out LearningPlan
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/learning-plans/generate",
		body:     map[string]int64{"oa_bloom_objective_id": bloomObjectiveID},
		fallback: "Failed to generate learning plan",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateComponentContent fills in one component of a plan.
func (c *Client) GenerateComponentContent(ctx context.Context, planID, componentID int64) (*LearningPlanComponent, error) {
	var out LearningPlanComponent
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/learning-plans/%s/components/%s/generate-content", planID, componentID),
		fallback: "Failed to generate component content",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LearningPlan fetches a plan with its components.
func (c *Client) LearningPlan(ctx context.Context, planID int64) (*LearningPlan, error) {
	var out LearningPlan
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/learning-plans/%s", planID),
		fallback: "Failed to get learning plan",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StartPlan marks a plan as started.
func (c *Client) StartPlan(ctx context.Context, planID int64) (*LearningPlan, error) {
	var out LearningPlan
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/learning-plans/%s/start", planID),
		fallback: "Failed to start learning plan",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CompletePlan marks a plan as completed.
func (c *Client) CompletePlan(ctx context.Context, planID int64) (*LearningPlan, error) {
	var out LearningPlan
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     pathf("/api/learning-plans/%s/complete", planID),
		fallback: "Failed to complete learning plan",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
