// Package academies defines the GraphQL types for the academy directory.
package academies

import (
	"github.com/graphql-go/graphql"
)

// FounderType exposes the registered instructor's contact details.
var FounderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Founder",
	Fields: graphql.Fields{
		"name":   &graphql.Field{Type: graphql.String},
		"phone":  &graphql.Field{Type: graphql.String},
		"mobile": &graphql.Field{Type: graphql.String},
	},
})

// FacilitiesType exposes the building and capacity figures.
var FacilitiesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Facilities",
	Fields: graphql.Fields{
		"total_area":         &graphql.Field{Type: graphql.String},
		"dedicated_area":     &graphql.Field{Type: graphql.String},
		"floors":             &graphql.Field{Type: graphql.String},
		"built_date":         &graphql.Field{Type: graphql.String},
		"capacity_temporary": &graphql.Field{Type: graphql.String},
		"capacity_total":     &graphql.Field{Type: graphql.String},
	},
})

// CourseType exposes one offered program with its fee breakdown.
var CourseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Course",
	Fields: graphql.Fields{
		"process":            &graphql.Field{Type: graphql.String},
		"subject":            &graphql.Field{Type: graphql.String},
		"track":              &graphql.Field{Type: graphql.String},
		"target":             &graphql.Field{Type: graphql.String},
		"quota":              &graphql.Field{Type: graphql.String},
		"period":             &graphql.Field{Type: graphql.String},
		"time":               &graphql.Field{Type: graphql.String},
		"fee":                &graphql.Field{Type: graphql.String},
		"fee_per_hour":       &graphql.Field{Type: graphql.String},
		"other_fees_total":   &graphql.Field{Type: graphql.String},
		"total_fee":          &graphql.Field{Type: graphql.String},
		"total_fee_per_hour": &graphql.Field{Type: graphql.String},
		"remarks":            &graphql.Field{Type: graphql.String},
	},
})

// InsuranceType exposes one liability policy.
var InsuranceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Insurance",
	Fields: graphql.Fields{
		"type":                      &graphql.Field{Type: graphql.String},
		"company":                   &graphql.Field{Type: graphql.String},
		"contractor":                &graphql.Field{Type: graphql.String},
		"policy_number":             &graphql.Field{Type: graphql.String},
		"compensation_per_person":   &graphql.Field{Type: graphql.String},
		"compensation_per_accident": &graphql.Field{Type: graphql.String},
		"medical_per_person":        &graphql.Field{Type: graphql.String},
		"start_date":                &graphql.Field{Type: graphql.String},
		"end_date":                  &graphql.Field{Type: graphql.String},
	},
})

// AcademyType is the full directory entity served to detail views.
var AcademyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Academy",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.String},
		"name":         &graphql.Field{Type: graphql.String},
		"category":     &graphql.Field{Type: graphql.String},
		"field":        &graphql.Field{Type: graphql.String},
		"address":      &graphql.Field{Type: graphql.String},
		"zip":          &graphql.Field{Type: graphql.String},
		"reg_date":     &graphql.Field{Type: graphql.String},
		"status":       &graphql.Field{Type: graphql.String},
		"status_date":  &graphql.Field{Type: graphql.String},
		"is_multi_use": &graphql.Field{Type: graphql.String},
		"is_boarding":  &graphql.Field{Type: graphql.String},
		"disclosure":   &graphql.Field{Type: graphql.String},
		"ownership":    &graphql.Field{Type: graphql.String},
		"founder":      &graphql.Field{Type: FounderType},
		"facilities":   &graphql.Field{Type: FacilitiesType},
		"courses":      &graphql.Field{Type: graphql.NewList(CourseType)},
		"insurances":   &graphql.Field{Type: graphql.NewList(InsuranceType)},
	},
})

// DirectoryOverviewType represents the high-level counts for the loaded
// snapshot.
var DirectoryOverviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DirectoryOverview",
	Fields: graphql.Fields{
		"total_academies": &graphql.Field{Type: graphql.Int},
		"open_count":      &graphql.Field{Type: graphql.Int},
		"closed_count":    &graphql.Field{Type: graphql.Int},
		"data_as_of":      &graphql.Field{Type: graphql.String},
	},
})
