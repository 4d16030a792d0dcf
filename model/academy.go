// Package model - Academy defines the directory entities assembled from the
// spreadsheet rows and served by the search and detail endpoints.
package model

// Academy represents one tutoring institution, deduplicated from one or more
// raw spreadsheet rows sharing the same report number and name.
type Academy struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category,omitempty"`
	Field          string `json:"field,omitempty"`
	Address        string `json:"address,omitempty"`
	Zip            string `json:"zip,omitempty"`
	RegDate        string `json:"reg_date,omitempty"`
	Status         string `json:"status,omitempty"`
	StatusDate     string `json:"status_date,omitempty"`
	IsMultiUse     string `json:"is_multi_use,omitempty"`
	IsBoarding     string `json:"is_boarding,omitempty"`
	Disclosure     string `json:"disclosure,omitempty"`
	Ownership      string `json:"ownership,omitempty"`
	BusinessNumber string `json:"business_number,omitempty"`
	Email          string `json:"email,omitempty"`
	ChangeDate     string `json:"change_date,omitempty"`

	Founder    Founder    `json:"founder"`
	Facilities Facilities `json:"facilities"`

	Courses     []Course     `json:"courses"`
	Insurances  []Insurance  `json:"insurances"`
	Inspections []Inspection `json:"inspections"`
}

// Founder holds the registered instructor details for an academy.
type Founder struct {
	Name    string `json:"name,omitempty"`
	Birth   string `json:"birth,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
}

// Facilities holds the building and capacity figures. All values are kept as
// the source strings; the sheet mixes units and thousands separators.
type Facilities struct {
	BuildingArea      string `json:"building_area,omitempty"`
	TotalArea         string `json:"total_area,omitempty"`
	DedicatedArea     string `json:"dedicated_area,omitempty"`
	Floors            string `json:"floors,omitempty"`
	BuiltDate         string `json:"built_date,omitempty"`
	CapacityTemporary string `json:"capacity_temporary,omitempty"`
	CapacityTotal     string `json:"capacity_total,omitempty"`
}

// Course represents one offered program with its full fee breakdown.
type Course struct {
	Process         string `json:"process,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Track           string `json:"track,omitempty"`
	Target          string `json:"target,omitempty"`
	Quota           string `json:"quota,omitempty"`
	Period          string `json:"period,omitempty"`
	PeriodMonths    string `json:"period_months,omitempty"`
	PeriodDays      string `json:"period_days,omitempty"`
	Time            string `json:"time,omitempty"`
	Fee             string `json:"fee,omitempty"`
	FeePerHour      string `json:"fee_per_hour,omitempty"`
	MaterialFee     string `json:"material_fee,omitempty"`
	MockExamFee     string `json:"mock_exam_fee,omitempty"`
	MaterialsCost   string `json:"materials_cost,omitempty"`
	MealFee         string `json:"meal_fee,omitempty"`
	SnackFee        string `json:"snack_fee,omitempty"`
	DormFee         string `json:"dorm_fee,omitempty"`
	TransportFee    string `json:"transport_fee,omitempty"`
	OtherFee        string `json:"other_fee,omitempty"`
	UniformFee      string `json:"uniform_fee,omitempty"`
	OtherFeesTotal  string `json:"other_fees_total,omitempty"`
	TotalFee        string `json:"total_fee,omitempty"`
	TotalFeePerHour string `json:"total_fee_per_hour,omitempty"`
	DisclosureType  string `json:"disclosure_type,omitempty"`
	Remarks         string `json:"remarks,omitempty"`
}

// Insurance represents one liability policy attached to an academy.
type Insurance struct {
	Type                    string `json:"type,omitempty"`
	Company                 string `json:"company,omitempty"`
	OtherType               string `json:"other_type,omitempty"`
	Contractor              string `json:"contractor,omitempty"`
	PolicyNumber            string `json:"policy_number,omitempty"`
	CompensationPerPerson   string `json:"compensation_per_person,omitempty"`
	CompensationPerAccident string `json:"compensation_per_accident,omitempty"`
	MedicalPerPerson        string `json:"medical_per_person,omitempty"`
	JoinDate                string `json:"join_date,omitempty"`
	StartDate               string `json:"start_date,omitempty"`
	EndDate                 string `json:"end_date,omitempty"`
}

// Inspection represents one supervisory inspection result. The tutoring-center
// sheet provides none of these today, but the detail view renders them when
// present.
type Inspection struct {
	Violation  string `json:"violation,omitempty"`
	Punishment string `json:"punishment,omitempty"`
	Date       string `json:"date,omitempty"`
}

// NewAcademy creates an Academy with initialized sub-collections so JSON
// responses serialize them as arrays rather than null.
func NewAcademy(id, name string) *Academy {
	return &Academy{
		ID:          id,
		Name:        name,
		Courses:     []Course{},
		Insurances:  []Insurance{},
		Inspections: []Inspection{},
	}
}

// AddCourse appends a course unless an existing course already carries the
// same subject, process, and target. Courses without a subject are ignored.
// Returns true when the course was appended.
func (a *Academy) AddCourse(c Course) bool {
	if c.Subject == "" {
		return false
	}
	for _, existing := range a.Courses {
		if existing.Subject == c.Subject && existing.Process == c.Process && existing.Target == c.Target {
			return false
		}
	}
	a.Courses = append(a.Courses, c)
	return true
}

// AddInsurance appends a policy unless one with the same non-empty policy
// number is already present. Records with an empty policy number are appended
// without a dedup check as long as the record carries any of company, policy
// number, or type. Returns true when the policy was appended.
func (a *Academy) AddInsurance(ins Insurance) bool {
	if ins.Company == "" && ins.PolicyNumber == "" && ins.Type == "" {
		return false
	}
	if ins.PolicyNumber != "" {
		for _, existing := range a.Insurances {
			if existing.PolicyNumber == ins.PolicyNumber {
				return false
			}
		}
	}
	a.Insurances = append(a.Insurances, ins)
	return true
}
