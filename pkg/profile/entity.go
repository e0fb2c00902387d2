package profile

import "time"

// DocumentKey identifies the singleton profile document in the store.
const DocumentKey = "main_cv"

// Document is the CV/portfolio record served publicly and edited by the admin.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []EducationItem `json:"education"`
	WorkExperience []WorkItem      `json:"workExperience"`
	Certifications []string        `json:"certifications"`
	Trainings      []string        `json:"trainings"`
	Projects       Projects        `json:"projects"`
}

type PersonalInfo struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
}

type WorkItem struct {
	Period   string `json:"period"`
	Company  string `json:"company"`
	Position string `json:"position"`
}

// Projects groups project descriptions by fixed category.
type Projects struct {
	IT                    []string `json:"it"`
	NetworkInfrastructure []string `json:"network_infrastructure"`
	Security              []string `json:"security"`
}

// Record is what the store keeps under a key.
type Record struct {
	Key       string
	Document  Document
	UpdatedAt time.Time
}

// Default returns the empty document created on first read.
func Default() Document {
	return Document{}.Normalize()
}

// Normalize replaces nil sequences with empty ones so the JSON encoding
// always carries every key with [] rather than null.
func (d Document) Normalize() Document {
	if d.Education == nil {
		d.Education = []EducationItem{}
	}
	if d.WorkExperience == nil {
		d.WorkExperience = []WorkItem{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
	if d.Trainings == nil {
		d.Trainings = []string{}
	}
	if d.Projects.IT == nil {
		d.Projects.IT = []string{}
	}
	if d.Projects.NetworkInfrastructure == nil {
		d.Projects.NetworkInfrastructure = []string{}
	}
	if d.Projects.Security == nil {
		d.Projects.Security = []string{}
	}
	return d
}
