package domain

import "time"

// JobStatus gates visibility. Only active jobs are ever served.
type JobStatus string

const (
	StatusActive   JobStatus = "active"
	StatusInactive JobStatus = "inactive"
)

type WorkplaceType string

const (
	WorkplaceOnsite       WorkplaceType = "On-site"
	WorkplaceHybrid       WorkplaceType = "Hybrid"
	WorkplaceRemote       WorkplaceType = "Remote"
	WorkplaceNotSpecified WorkplaceType = "Not specified"
)

type VisaSponsorship string

const (
	VisaYes          VisaSponsorship = "Yes"
	VisaNo           VisaSponsorship = "No"
	VisaNotSpecified VisaSponsorship = "Not specified"
)

// CareerLevel values are the closed enum the normalizer maps raw source
// strings onto. Multi-word names lose their spaces ("Entry Level" -> "EntryLevel").
type CareerLevel string

const (
	LevelInternship     CareerLevel = "Internship"
	LevelEntryLevel     CareerLevel = "EntryLevel"
	LevelAssociate      CareerLevel = "Associate"
	LevelJunior         CareerLevel = "Junior"
	LevelMidLevel       CareerLevel = "MidLevel"
	LevelSenior         CareerLevel = "Senior"
	LevelStaff          CareerLevel = "Staff"
	LevelPrincipal      CareerLevel = "Principal"
	LevelLead           CareerLevel = "Lead"
	LevelManager        CareerLevel = "Manager"
	LevelSeniorManager  CareerLevel = "SeniorManager"
	LevelDirector       CareerLevel = "Director"
	LevelSeniorDirector CareerLevel = "SeniorDirector"
	LevelVP             CareerLevel = "VP"
	LevelSVP            CareerLevel = "SVP"
	LevelEVP            CareerLevel = "EVP"
	LevelCLevel         CareerLevel = "CLevel"
	LevelFounder        CareerLevel = "Founder"
	LevelNotSpecified   CareerLevel = "NotSpecified"
)

type RemoteRegion string

const (
	RegionWorldwide    RemoteRegion = "Worldwide"
	RegionAmericasOnly RemoteRegion = "Americas Only"
	RegionEuropeOnly   RemoteRegion = "Europe Only"
	RegionEMEAOnly     RemoteRegion = "EMEA Only"
	RegionAPACOnly     RemoteRegion = "APAC Only"
	RegionUSOnly       RemoteRegion = "US Only"
	RegionUKEUOnly     RemoteRegion = "UK/EU Only"
)

// SalaryUnit is the billing period a salary is quoted in. A salary never
// mixes units.
type SalaryUnit string

const (
	UnitHour    SalaryUnit = "hour"
	UnitDay     SalaryUnit = "day"
	UnitWeek    SalaryUnit = "week"
	UnitMonth   SalaryUnit = "month"
	UnitYear    SalaryUnit = "year"
	UnitProject SalaryUnit = "project"
)

// Salary bounds are pointers so "not stated" is distinct from zero. A salary
// with both bounds nil carries no information and is treated as absent.
type Salary struct {
	Min      *float64   `json:"min"`
	Max      *float64   `json:"max"`
	Currency string     `json:"currency"`
	Unit     SalaryUnit `json:"unit"`
}

// Empty reports whether the salary carries no usable bound.
func (s *Salary) Empty() bool {
	return s == nil || (s.Min == nil && s.Max == nil)
}

// Job is the canonical in-memory record. It is built fresh on every source
// fetch and treated as immutable afterwards.
type Job struct {
	ID               string          `json:"id"`
	Slug             string          `json:"slug"`
	Title            string          `json:"title"`
	Company          string          `json:"company"`
	Type             string          `json:"type"`
	Salary           *Salary         `json:"salary,omitempty"`
	Description      string          `json:"description,omitempty"`
	ApplyURL         string          `json:"apply_url"`
	PostedDate       time.Time       `json:"posted_date"`
	Status           JobStatus       `json:"status"`
	CareerLevel      []CareerLevel   `json:"career_level"`
	VisaSponsorship  VisaSponsorship `json:"visa_sponsorship"`
	Featured         bool            `json:"featured"`
	WorkplaceType    WorkplaceType   `json:"workplace_type"`
	RemoteRegion     *RemoteRegion   `json:"remote_region,omitempty"`
	WorkplaceCity    string          `json:"workplace_city,omitempty"`
	WorkplaceCountry string          `json:"workplace_country,omitempty"`
	Languages        []string        `json:"languages"`
}
