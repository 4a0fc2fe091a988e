package server

import "portview/internal/domain"

// PortfolioResponse is the portfolio document plus collection counts.
type PortfolioResponse struct {
	domain.Portfolio
	Counts PortfolioCounts `json:"counts"`
}

type PortfolioCounts struct {
	Actions     int `json:"actions"`
	Actors      int `json:"actors"`
	Assets      int `json:"assets"`
	Connections int `json:"connections"`
	Impacts     int `json:"impacts"`
}

func portfolioResponse(p domain.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		Portfolio: p,
		Counts: PortfolioCounts{
			Actions:     len(p.Actions),
			Actors:      len(p.Actors),
			Assets:      len(p.Assets),
			Connections: len(p.Connections),
			Impacts:     len(p.Impacts),
		},
	}
}
