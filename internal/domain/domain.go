package domain

// ContactInfo is optional actor contact data; empty fields are omitted.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

type Milestone struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	DueDate      string          `json:"due_date"`
	Status       MilestoneStatus `json:"status" enum:"pending,in-progress,completed,delayed"`
	Dependencies []string        `json:"dependencies,omitempty"`
}

type Timeline struct {
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	Milestones []Milestone `json:"milestones"`
}

type Action struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	TargetOutcomes []string     `json:"target_outcomes"`
	Status         ActionStatus `json:"status" enum:"not_started,in_progress,completed,on_hold,cancelled"`
	Timeline       Timeline     `json:"timeline"`
	Sector         string       `json:"sector"`
	ImpactArea     string       `json:"impact_area"`
	Budget         float64      `json:"budget"`
	CreatedAt      string       `json:"created_at" format:"date-time"`
	UpdatedAt      string       `json:"updated_at" format:"date-time"`
}

type Actor struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ActorType   `json:"type" enum:"government,private_sector,civil_society,academic,community,international"`
	Sector      string      `json:"sector"`
	Role        string      `json:"role"`
	ContactInfo ContactInfo `json:"contact_info"`
	Capacity    int         `json:"capacity"`
	Influence   int         `json:"influence"`
	CreatedAt   string      `json:"created_at" format:"date-time"`
	UpdatedAt   string      `json:"updated_at" format:"date-time"`
}

type Asset struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         AssetType    `json:"type" enum:"funding,infrastructure,data,knowledge,network,technology"`
	Description  string       `json:"description"`
	Value        float64      `json:"value"`
	Availability Availability `json:"availability" enum:"available,limited,unavailable"`
	Owner        string       `json:"owner,omitempty"`
	Location     string       `json:"location,omitempty"`
	CreatedAt    string       `json:"created_at" format:"date-time"`
	UpdatedAt    string       `json:"updated_at" format:"date-time"`
}

type Connection struct {
	ID               string           `json:"id"`
	SourceID         string           `json:"source_id"`
	SourceType       EntityKind       `json:"source_type" enum:"action,actor,asset"`
	TargetID         string           `json:"target_id"`
	TargetType       EntityKind       `json:"target_type" enum:"action,actor,asset"`
	RelationshipType RelationshipType `json:"relationship_type" enum:"dependency,synergy,conflict,support"`
	Strength         int              `json:"strength"`
	Description      string           `json:"description,omitempty"`
	CreatedAt        string           `json:"created_at" format:"date-time"`
}

type Impact struct {
	ID          string             `json:"id"`
	ActionID    string             `json:"action_id"`
	Type        string             `json:"type" enum:"direct,indirect,co-benefit"`
	Description string             `json:"description"`
	Magnitude   int                `json:"magnitude"`
	Timeframe   string             `json:"timeframe" enum:"short,medium,long"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	CreatedAt   string             `json:"created_at" format:"date-time"`
}

type Metadata struct {
	CreatedAt string   `json:"created_at" format:"date-time"`
	UpdatedAt string   `json:"updated_at" format:"date-time"`
	CreatedBy string   `json:"created_by"`
	Tags      []string `json:"tags"`
	Sector    string   `json:"sector"`
	Region    string   `json:"region"`
}

// Portfolio is the aggregate root owning all entity collections.
type Portfolio struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Actions     []Action     `json:"actions"`
	Actors      []Actor      `json:"actors"`
	Assets      []Asset      `json:"assets"`
	Connections []Connection `json:"connections"`
	Impacts     []Impact     `json:"impacts"`
	Metadata    Metadata     `json:"metadata"`
}
