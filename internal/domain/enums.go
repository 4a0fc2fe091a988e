package domain

// Enum values arrive as free text from CSV cells. Each Parse* function
// maps the known literals to a variant and coerces anything else
// (including the empty cell) to that field's documented default, so an
// imported entity can never carry an out-of-vocabulary value.

type ActionStatus string

const (
	ActionNotStarted ActionStatus = "not_started"
	ActionInProgress ActionStatus = "in_progress"
	ActionCompleted  ActionStatus = "completed"
	ActionOnHold     ActionStatus = "on_hold"
	ActionCancelled  ActionStatus = "cancelled"
)

func ParseActionStatus(s string) ActionStatus {
	switch ActionStatus(s) {
	case ActionNotStarted, ActionInProgress, ActionCompleted, ActionOnHold, ActionCancelled:
		return ActionStatus(s)
	}
	return ActionNotStarted
}

type ActorType string

const (
	ActorGovernment    ActorType = "government"
	ActorPrivateSector ActorType = "private_sector"
	ActorCivilSociety  ActorType = "civil_society"
	ActorAcademic      ActorType = "academic"
	ActorCommunity     ActorType = "community"
	ActorInternational ActorType = "international"
)

func ParseActorType(s string) ActorType {
	switch ActorType(s) {
	case ActorGovernment, ActorPrivateSector, ActorCivilSociety, ActorAcademic, ActorCommunity, ActorInternational:
		return ActorType(s)
	}
	return ActorCivilSociety
}

type AssetType string

const (
	AssetFunding        AssetType = "funding"
	AssetInfrastructure AssetType = "infrastructure"
	AssetData           AssetType = "data"
	AssetKnowledge      AssetType = "knowledge"
	AssetNetwork        AssetType = "network"
	AssetTechnology     AssetType = "technology"
)

func ParseAssetType(s string) AssetType {
	switch AssetType(s) {
	case AssetFunding, AssetInfrastructure, AssetData, AssetKnowledge, AssetNetwork, AssetTechnology:
		return AssetType(s)
	}
	return AssetKnowledge
}

type Availability string

const (
	Available   Availability = "available"
	Limited     Availability = "limited"
	Unavailable Availability = "unavailable"
)

func ParseAvailability(s string) Availability {
	switch Availability(s) {
	case Available, Limited, Unavailable:
		return Availability(s)
	}
	return Available
}

type EntityKind string

const (
	KindAction EntityKind = "action"
	KindActor  EntityKind = "actor"
	KindAsset  EntityKind = "asset"
)

// ParseEntityKind coerces unknown kinds to fallback, which differs per
// connection endpoint (source defaults to action, target to actor).
func ParseEntityKind(s string, fallback EntityKind) EntityKind {
	switch EntityKind(s) {
	case KindAction, KindActor, KindAsset:
		return EntityKind(s)
	}
	return fallback
}

type RelationshipType string

const (
	RelDependency RelationshipType = "dependency"
	RelSynergy    RelationshipType = "synergy"
	RelConflict   RelationshipType = "conflict"
	RelSupport    RelationshipType = "support"
)

func ParseRelationshipType(s string) RelationshipType {
	switch RelationshipType(s) {
	case RelDependency, RelSynergy, RelConflict, RelSupport:
		return RelationshipType(s)
	}
	return RelSynergy
}

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneDelayed    MilestoneStatus = "delayed"
)

func ParseMilestoneStatus(s string) MilestoneStatus {
	switch MilestoneStatus(s) {
	case MilestonePending, MilestoneInProgress, MilestoneCompleted, MilestoneDelayed:
		return MilestoneStatus(s)
	}
	return MilestonePending
}
