//
// Waldiez is pleased to support the open source community by making waldiez-go available.
//
// Copyright (C) 2025 Waldiez.  All rights reserved.
//
// waldiez-go is licensed under the Apache License Version 2.0.
//
package agent

import "fmt"

// ReasoningConfig tunes the tree-of-thought search of a reasoning
// agent. Zero values fall back to the framework defaults.
type ReasoningConfig struct {
	// Method is the search strategy: beam_search, mcts, lats or dfs.
	Method string `json:"method,omitempty"`
	// MaxDepth bounds the reasoning tree depth.
	MaxDepth *int `json:"maxDepth,omitempty"`
	// ForestSize is the number of independent trees.
	ForestSize *int `json:"forestSize,omitempty"`
	// RatingScale is the grading scale for candidate thoughts.
	RatingScale *int `json:"ratingScale,omitempty"`
	// BeamSize bounds the beam for beam_search.
	BeamSize *int `json:"beamSize,omitempty"`
	// AnswerApproach picks the final answer: pool or best.
	AnswerApproach string `json:"answerApproach,omitempty"`
	// Nsim is the simulation count for mcts/lats.
	Nsim *int `json:"nsim,omitempty"`
	// ExplorationConstant is the UCT exploration parameter.
	ExplorationConstant *float64 `json:"explorationConstant,omitempty"`
}

// Validate applies defaults and checks the enums.
func (r *ReasoningConfig) Validate() error {
	if r.Method == "" {
		r.Method = "beam_search"
	}
	switch r.Method {
	case "beam_search", "mcts", "lats", "dfs":
	default:
		return fmt.Errorf("unknown reasoning method %q", r.Method)
	}
	if r.AnswerApproach == "" {
		r.AnswerApproach = "pool"
	}
	switch r.AnswerApproach {
	case "pool", "best":
	default:
		return fmt.Errorf("unknown answer approach %q", r.AnswerApproach)
	}
	return nil
}

// ToConfigMap renders the reason_config dictionary for the generated
// constructor call.
func (r *ReasoningConfig) ToConfigMap() map[string]any {
	cfg := map[string]any{
		"method":          r.Method,
		"answer_approach": r.AnswerApproach,
	}
	if r.MaxDepth != nil {
		cfg["max_depth"] = *r.MaxDepth
	}
	if r.ForestSize != nil {
		cfg["forest_size"] = *r.ForestSize
	}
	if r.RatingScale != nil {
		cfg["rating_scale"] = *r.RatingScale
	}
	if r.BeamSize != nil {
		cfg["beam_size"] = *r.BeamSize
	}
	if r.Nsim != nil {
		cfg["nsim"] = *r.Nsim
	}
	if r.ExplorationConstant != nil {
		cfg["exploration_constant"] = *r.ExplorationConstant
	}
	return cfg
}
