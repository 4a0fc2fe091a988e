package importer

// Template CSVs offered for download as user guidance; they are never
// consumed programmatically. Column names are case-sensitive and must
// match these headers exactly.

var templates = map[Kind]string{
	KindActions: `name,description,status,sector,impactArea,budget,startDate,endDate,targetOutcomes
"Urban Green Infrastructure","Implement comprehensive green infrastructure",in_progress,Environmental,Climate Resilience,2500000,2024-01-15,2026-12-31,"Improved air quality;Enhanced biodiversity"`,
	KindActors: `name,type,sector,role,capacity,influence,email,phone,website
"City Planning Department",government,Government,Lead Coordinator,8,9,planning@city.gov,+1-555-0123,https://city.gov/planning`,
	KindAssets: `name,type,description,value,availability,owner,location
"Federal Infrastructure Grant",funding,"Federal funding for projects",15000000,available,"Federal Government",`,
	KindConnections: `sourceId,sourceType,targetId,targetType,relationshipType,strength,description
"action-1",action,"actor-1",actor,dependency,9,"City Planning leads the project"`,
}

// Template returns the example CSV for kind, or an ErrInvalidKind error
// for anything else.
func Template(kind Kind) (string, error) {
	t, ok := templates[kind]
	if !ok {
		return "", ErrInvalidKind
	}
	return t, nil
}
