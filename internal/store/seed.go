package store

import "portview/internal/domain"

// Seed returns the baseline portfolio: the initial state of a session and
// the reset target. Entity ids here are stable literals (not UUIDs) so
// connection CSVs and docs can reference them.
func Seed() domain.Portfolio {
	return domain.Portfolio{
		ID:          "portfolio-1",
		Name:        "Sustainable City Transformation",
		Description: "Comprehensive portfolio of initiatives to transform the city into a sustainable, resilient, and equitable urban environment",
		Actions:     seedActions(),
		Actors:      seedActors(),
		Assets:      seedAssets(),
		Connections: seedConnections(),
		Impacts:     seedImpacts(),
		Metadata: domain.Metadata{
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-20T00:00:00Z",
			CreatedBy: "City Planning Department",
			Tags:      []string{"sustainability", "urban development", "climate action", "social equity"},
			Sector:    "Urban Development",
			Region:    "Metropolitan Area",
		},
	}
}

// Empty returns a portfolio with the given identity metadata and no
// entities, for sessions that start without the seed data.
func Empty(meta domain.Metadata, id, name, description string) domain.Portfolio {
	return domain.Portfolio{
		ID:          id,
		Name:        name,
		Description: description,
		Actions:     []domain.Action{},
		Actors:      []domain.Actor{},
		Assets:      []domain.Asset{},
		Connections: []domain.Connection{},
		Impacts:     []domain.Impact{},
		Metadata:    meta,
	}
}

func seedActions() []domain.Action {
	return []domain.Action{
		{
			ID:             "action-1",
			Name:           "Urban Green Infrastructure Development",
			Description:    "Implement comprehensive green infrastructure across the city including parks, green roofs, and urban forests",
			TargetOutcomes: []string{"Improved air quality", "Enhanced biodiversity", "Reduced urban heat island effect"},
			Status:         domain.ActionInProgress,
			Timeline: domain.Timeline{
				StartDate: "2024-01-15",
				EndDate:   "2026-12-31",
				Milestones: []domain.Milestone{
					{ID: "m1", Title: "Site Assessment", Description: "Complete environmental assessment of target areas", DueDate: "2024-03-15", Status: domain.MilestoneCompleted},
					{ID: "m2", Title: "Community Consultation", Description: "Engage with local communities and stakeholders", DueDate: "2024-06-30", Status: domain.MilestoneInProgress},
					{ID: "m3", Title: "Implementation Phase 1", Description: "Begin construction of priority green spaces", DueDate: "2024-12-31", Status: domain.MilestonePending},
				},
			},
			Sector:     "Environmental",
			ImpactArea: "Climate Resilience",
			Budget:     2500000,
			CreatedAt:  "2024-01-01T00:00:00Z",
			UpdatedAt:  "2024-01-15T00:00:00Z",
		},
		{
			ID:             "action-2",
			Name:           "Smart City Digital Platform",
			Description:    "Develop an integrated digital platform for city services and citizen engagement",
			TargetOutcomes: []string{"Improved service delivery", "Enhanced citizen engagement", "Data-driven decision making"},
			Status:         domain.ActionNotStarted,
			Timeline: domain.Timeline{
				StartDate: "2024-03-01",
				EndDate:   "2025-08-31",
				Milestones: []domain.Milestone{
					{ID: "m4", Title: "Requirements Gathering", Description: "Define platform requirements and user needs", DueDate: "2024-04-30", Status: domain.MilestonePending},
					{ID: "m5", Title: "Development Phase", Description: "Build core platform functionality", DueDate: "2025-02-28", Status: domain.MilestonePending},
					{ID: "m6", Title: "Pilot Launch", Description: "Launch pilot program with select services", DueDate: "2025-06-30", Status: domain.MilestonePending},
				},
			},
			Sector:     "Technology",
			ImpactArea: "Digital Transformation",
			Budget:     1800000,
			CreatedAt:  "2024-01-01T00:00:00Z",
			UpdatedAt:  "2024-01-01T00:00:00Z",
		},
		{
			ID:             "action-3",
			Name:           "Affordable Housing Initiative",
			Description:    "Develop 500 affordable housing units across the city with integrated community services",
			TargetOutcomes: []string{"Increased housing affordability", "Reduced homelessness", "Enhanced community cohesion"},
			Status:         domain.ActionInProgress,
			Timeline: domain.Timeline{
				StartDate: "2023-09-01",
				EndDate:   "2027-06-30",
				Milestones: []domain.Milestone{
					{ID: "m7", Title: "Land Acquisition", Description: "Secure suitable land parcels for development", DueDate: "2024-01-31", Status: domain.MilestoneCompleted},
					{ID: "m8", Title: "Design and Permitting", Description: "Complete architectural design and obtain permits", DueDate: "2024-06-30", Status: domain.MilestoneInProgress},
					{ID: "m9", Title: "Construction Phase 1", Description: "Begin construction of first 100 units", DueDate: "2024-12-31", Status: domain.MilestonePending},
				},
			},
			Sector:     "Housing",
			ImpactArea: "Social Equity",
			Budget:     45000000,
			CreatedAt:  "2023-09-01T00:00:00Z",
			UpdatedAt:  "2024-01-10T00:00:00Z",
		},
		{
			ID:             "action-4",
			Name:           "Renewable Energy Transition",
			Description:    "Transition municipal buildings and facilities to 100% renewable energy sources",
			TargetOutcomes: []string{"Reduced carbon emissions", "Lower energy costs", "Increased energy security"},
			Status:         domain.ActionCompleted,
			Timeline: domain.Timeline{
				StartDate: "2022-01-01",
				EndDate:   "2023-12-31",
				Milestones: []domain.Milestone{
					{ID: "m10", Title: "Energy Audit", Description: "Complete comprehensive energy audit of all facilities", DueDate: "2022-03-31", Status: domain.MilestoneCompleted},
					{ID: "m11", Title: "Solar Installation", Description: "Install solar panels on municipal buildings", DueDate: "2023-06-30", Status: domain.MilestoneCompleted},
					{ID: "m12", Title: "Grid Integration", Description: "Complete grid integration and testing", DueDate: "2023-12-31", Status: domain.MilestoneCompleted},
				},
			},
			Sector:     "Energy",
			ImpactArea: "Climate Action",
			Budget:     8500000,
			CreatedAt:  "2022-01-01T00:00:00Z",
			UpdatedAt:  "2023-12-31T00:00:00Z",
		},
		{
			ID:             "action-5",
			Name:           "Public Transportation Enhancement",
			Description:    "Expand and modernize public transportation network with electric buses and improved routes",
			TargetOutcomes: []string{"Reduced traffic congestion", "Improved air quality", "Enhanced mobility access"},
			Status:         domain.ActionOnHold,
			Timeline: domain.Timeline{
				StartDate: "2024-02-01",
				EndDate:   "2026-12-31",
				Milestones: []domain.Milestone{
					{ID: "m13", Title: "Route Planning", Description: "Design optimized bus routes and schedules", DueDate: "2024-04-30", Status: domain.MilestoneCompleted},
					{ID: "m14", Title: "Fleet Procurement", Description: "Procure electric buses and charging infrastructure", DueDate: "2024-08-31", Status: domain.MilestoneDelayed},
					{ID: "m15", Title: "System Launch", Description: "Launch enhanced public transportation system", DueDate: "2025-06-30", Status: domain.MilestonePending},
				},
			},
			Sector:     "Transportation",
			ImpactArea: "Mobility",
			Budget:     32000000,
			CreatedAt:  "2024-01-01T00:00:00Z",
			UpdatedAt:  "2024-01-20T00:00:00Z",
		},
	}
}

func seedActors() []domain.Actor {
	return []domain.Actor{
		{
			ID: "actor-1", Name: "City Planning Department", Type: domain.ActorGovernment,
			Sector: "Government", Role: "Lead Coordinator",
			ContactInfo: domain.ContactInfo{Email: "planning@city.gov", Phone: "+1-555-0123", Website: "https://city.gov/planning"},
			Capacity:    8, Influence: 9,
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "actor-2", Name: "GreenTech Solutions Inc.", Type: domain.ActorPrivateSector,
			Sector: "Technology", Role: "Technology Partner",
			ContactInfo: domain.ContactInfo{Email: "contact@greentech.com", Phone: "+1-555-0456", Website: "https://greentech.com"},
			Capacity:    7, Influence: 6,
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "actor-3", Name: "Community Housing Coalition", Type: domain.ActorCivilSociety,
			Sector: "Housing", Role: "Advocacy Partner",
			ContactInfo: domain.ContactInfo{Email: "info@housingcoalition.org", Phone: "+1-555-0789", Website: "https://housingcoalition.org"},
			Capacity:    6, Influence: 7,
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "actor-4", Name: "Urban Research Institute", Type: domain.ActorAcademic,
			Sector: "Research", Role: "Research Partner",
			ContactInfo: domain.ContactInfo{Email: "research@urbaninstitute.edu", Phone: "+1-555-0321", Website: "https://urbaninstitute.edu"},
			Capacity:    8, Influence: 5,
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "actor-5", Name: "Local Business Association", Type: domain.ActorPrivateSector,
			Sector: "Business", Role: "Stakeholder",
			ContactInfo: domain.ContactInfo{Email: "info@localbusiness.org", Phone: "+1-555-0654", Website: "https://localbusiness.org"},
			Capacity:    5, Influence: 8,
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "actor-6", Name: "Environmental Justice Network", Type: domain.ActorCivilSociety,
			Sector: "Environmental", Role: "Advocacy Partner",
			ContactInfo: domain.ContactInfo{Email: "contact@ejnetwork.org", Phone: "+1-555-0987", Website: "https://ejnetwork.org"},
			Capacity:    7, Influence: 6,
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
	}
}

func seedAssets() []domain.Asset {
	return []domain.Asset{
		{
			ID: "asset-1", Name: "Federal Infrastructure Grant", Type: domain.AssetFunding,
			Description: "Federal funding for infrastructure development projects",
			Value:       15000000, Availability: domain.Available, Owner: "Federal Government",
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "asset-2", Name: "City Data Platform", Type: domain.AssetData,
			Description: "Comprehensive city data platform with real-time analytics",
			Value:       2000000, Availability: domain.Available, Owner: "City Government",
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "asset-3", Name: "Community Engagement Network", Type: domain.AssetNetwork,
			Description: "Established network of community organizations and leaders",
			Value:       500000, Availability: domain.Available, Owner: "Community Coalition",
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "asset-4", Name: "Green Technology Expertise", Type: domain.AssetKnowledge,
			Description: "Specialized knowledge in sustainable urban development",
			Value:       300000, Availability: domain.Available, Owner: "GreenTech Solutions",
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "asset-5", Name: "Public Transportation Infrastructure", Type: domain.AssetInfrastructure,
			Description: "Existing public transportation network and facilities",
			Value:       25000000, Availability: domain.Limited, Owner: "City Government",
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "asset-6", Name: "Renewable Energy Systems", Type: domain.AssetTechnology,
			Description: "Solar and wind energy systems for municipal buildings",
			Value:       8500000, Availability: domain.Available, Owner: "City Government",
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
	}
}

func seedConnections() []domain.Connection {
	return []domain.Connection{
		{
			ID: "conn-1", SourceID: "action-1", SourceType: domain.KindAction,
			TargetID: "actor-1", TargetType: domain.KindActor,
			RelationshipType: domain.RelDependency, Strength: 9,
			Description: "City Planning Department leads the green infrastructure development",
			CreatedAt:   "2024-01-01T00:00:00Z",
		},
		{
			ID: "conn-2", SourceID: "action-1", SourceType: domain.KindAction,
			TargetID: "asset-1", TargetType: domain.KindAsset,
			RelationshipType: domain.RelSupport, Strength: 8,
			Description: "Federal grant supports green infrastructure funding",
			CreatedAt:   "2024-01-01T00:00:00Z",
		},
		{
			ID: "conn-3", SourceID: "action-2", SourceType: domain.KindAction,
			TargetID: "actor-2", TargetType: domain.KindActor,
			RelationshipType: domain.RelSynergy, Strength: 7,
			Description: "GreenTech Solutions provides technology expertise for digital platform",
			CreatedAt:   "2024-01-01T00:00:00Z",
		},
		{
			ID: "conn-4", SourceID: "action-3", SourceType: domain.KindAction,
			TargetID: "actor-3", TargetType: domain.KindActor,
			RelationshipType: domain.RelSynergy, Strength: 8,
			Description: "Community Housing Coalition advocates for affordable housing",
			CreatedAt:   "2024-01-01T00:00:00Z",
		},
		{
			ID: "conn-5", SourceID: "action-4", SourceType: domain.KindAction,
			TargetID: "asset-6", TargetType: domain.KindAsset,
			RelationshipType: domain.RelDependency, Strength: 10,
			Description: "Renewable energy systems are essential for energy transition",
			CreatedAt:   "2024-01-01T00:00:00Z",
		},
		{
			ID: "conn-6", SourceID: "action-5", SourceType: domain.KindAction,
			TargetID: "asset-5", TargetType: domain.KindAsset,
			RelationshipType: domain.RelDependency, Strength: 9,
			Description: "Existing transportation infrastructure is foundation for enhancement",
			CreatedAt:   "2024-01-01T00:00:00Z",
		},
	}
}

func seedImpacts() []domain.Impact {
	return []domain.Impact{
		{
			ID: "impact-1", ActionID: "action-1", Type: "direct",
			Description: "Reduction in urban heat island effect by 3-5 degrees C",
			Magnitude:   8, Timeframe: "medium",
			Metrics:   map[string]float64{"temperature_reduction": 4, "area_covered": 500},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "impact-2", ActionID: "action-1", Type: "co-benefit",
			Description: "Improved mental health and well-being for residents",
			Magnitude:   6, Timeframe: "long",
			Metrics:   map[string]float64{"health_improvement": 15},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "impact-3", ActionID: "action-2", Type: "direct",
			Description: "30% improvement in city service response times",
			Magnitude:   7, Timeframe: "short",
			Metrics:   map[string]float64{"response_time_improvement": 30},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "impact-4", ActionID: "action-3", Type: "direct",
			Description: "500 new affordable housing units created",
			Magnitude:   9, Timeframe: "medium",
			Metrics:   map[string]float64{"units_created": 500, "families_housed": 500},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "impact-5", ActionID: "action-4", Type: "direct",
			Description: "100% renewable energy for municipal buildings",
			Magnitude:   10, Timeframe: "medium",
			Metrics:   map[string]float64{"carbon_reduction": 25000, "energy_cost_savings": 1200000},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "impact-6", ActionID: "action-5", Type: "indirect",
			Description: "Reduced traffic congestion and improved air quality",
			Magnitude:   7, Timeframe: "medium",
			Metrics:   map[string]float64{"congestion_reduction": 20, "air_quality_improvement": 15},
			CreatedAt: "2024-01-01T00:00:00Z",
		},
	}
}
