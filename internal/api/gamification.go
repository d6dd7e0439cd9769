package api

import (
	"context"
	"net/http"
)

// GamificationStats returns the caller's level, XP, coins and streaks.
func (c *Client) GamificationStats(ctx context.Context) (*GamificationStats, error) {
	var out GamificationStats
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/gamification/stats",
		fallback: "Failed to load gamification stats",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard returns the XP ranking.
func (c *Client) Leaderboard(ctx context.Context) (*Leaderboard, error) {
	var out Leaderboard
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/gamification/leaderboard",
		fallback: "Failed to load leaderboard",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
