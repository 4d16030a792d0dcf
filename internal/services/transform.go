// Package services provides the directory core: the row-to-entity
// transformer, the ranked search engine, and the in-memory store that the
// REST and GraphQL surfaces read from.
package services

import (
	"fmt"
	"strings"

	"github.com/hanamedu/academy-backend/model"
	"github.com/hanamedu/academy-backend/sheets"
)

// Source column headers as they appear in the 교습소 export tab.
const (
	colReportNumber = "신고번호"
	colName         = "교습소명"
	colCategory     = "분야구분"
	colAddress      = "교습소주소"
	colZip          = "우편번호"
	colRegDate      = "등록일"
	colStatus       = "등록상태"
	colStatusDate   = "개소/휴소/폐소일"
	colMultiUse     = "다중이용업소여부"
	colBoarding     = "기숙학원여부"
	colDisclosure   = "수강료공개구분"
	colOwnership    = "건물소유"
	colBizNumber    = "사업자등록번호"
	colEmail        = "이메일주소"
	colChangeDate   = "변경일"

	colFounderName  = "교습자-성명"
	colFounderPhone = "전화번호"
	colFounderMob   = "핸드폰"

	colTotalArea    = "총면적"
	colFloors       = "총건물층수"
	colBuiltDate    = "준공일(사용승인일)"
	colCapacityTemp = "일시수용능력인원"
	colCapacityTot  = "정원합계"

	colCourseProcess   = "교습과정"
	colCourseSubject   = "교습과목(반)"
	colCourseTrack     = "교습계열"
	colCourseTarget    = "교습대상"
	colCourseQuota     = "정원"
	colCourseMonths    = "교습기간(개월)"
	colCourseDays      = "교습기간(일)"
	colCourseTime      = "총교습기간(분)"
	colCourseFee       = "교습비"
	colCourseFeeHour   = "교습비(시간당)"
	colMaterialFee     = "교재비"
	colMockExamFee     = "모의고사비"
	colMaterialsCost   = "재료비"
	colMealFee         = "급식비"
	colSnackFee        = "간식비"
	colDormFee         = "기숙사비"
	colTransportFee    = "차량비"
	colOtherFee        = "기타비"
	colUniformFee      = "피복비"
	colOtherFeesTotal  = "기타경비합계"
	colTotalFee        = "총교습비"
	colTotalFeeHour    = "총교습비(시간당)"
	colCourseRemarks   = "비고(교습과정)"
	colInsType         = "보험가입여부"
	colInsCompany      = "보험가입기관"
	colInsOtherType    = "보험가입종류기타명"
	colInsContractor   = "계약업체명"
	colInsPolicyNumber = "계약번호"
	colInsPerPerson    = "인당배상금액"
	colInsPerAccident  = "사고당배상금액"
	colInsMedical      = "인당의료실비금액"
	colInsJoinDate     = "가입일자"
	colInsStartDate    = "보험시작일자"
	colInsEndDate      = "보험종료일자"
)

// Transform groups flat spreadsheet rows into deduplicated academies. Rows
// sharing the same trimmed report number and name merge into one Academy, in
// first-appearance order. Rows missing either grouping field are dropped.
// The function never fails; missing columns resolve to empty strings.
func Transform(rows []sheets.Row) []*model.Academy {
	byKey := make(map[string]*model.Academy, len(rows))
	var ordered []*model.Academy
	skipped := 0

	for _, row := range rows {
		reportNum := strings.TrimSpace(row[colReportNumber])
		name := strings.TrimSpace(row[colName])
		if reportNum == "" || name == "" {
			skipped++
			continue
		}

		key := reportNum + "_" + name
		academy, ok := byKey[key]
		if !ok {
			academy = newAcademyFromRow(reportNum, name, row)
			byKey[key] = academy
			ordered = append(ordered, academy)
		}

		academy.AddCourse(courseFromRow(row))
		academy.AddInsurance(insuranceFromRow(row))
		// The tutoring-center tab carries no inspection records.
	}

	logger.Sugar().Infof("Transformed %d rows into %d academies (%d rows skipped)",
		len(rows), len(ordered), skipped)
	return ordered
}

func newAcademyFromRow(reportNum, name string, row sheets.Row) *model.Academy {
	academy := model.NewAcademy(reportNum, name)
	academy.Category = withDefault(row[colCategory], "교습소")
	academy.Field = row[colCategory]
	academy.Address = row[colAddress]
	academy.Zip = row[colZip]
	academy.RegDate = row[colRegDate]
	academy.Status = row[colStatus]
	academy.StatusDate = row[colStatusDate]
	academy.IsMultiUse = row[colMultiUse]
	academy.IsBoarding = row[colBoarding]
	academy.Disclosure = row[colDisclosure]
	academy.Ownership = row[colOwnership]
	academy.BusinessNumber = row[colBizNumber]
	academy.Email = row[colEmail]
	academy.ChangeDate = row[colChangeDate]

	academy.Founder = model.Founder{
		// Birth and home address are not published for tutoring centers.
		Name:   row[colFounderName],
		Phone:  row[colFounderPhone],
		Mobile: row[colFounderMob],
	}
	academy.Facilities = model.Facilities{
		TotalArea:         row[colTotalArea],
		Floors:            row[colFloors],
		BuiltDate:         row[colBuiltDate],
		CapacityTemporary: row[colCapacityTemp],
		CapacityTotal:     row[colCapacityTot],
	}
	return academy
}

func courseFromRow(row sheets.Row) model.Course {
	return model.Course{
		Process:         row[colCourseProcess],
		Subject:         row[colCourseSubject],
		Track:           row[colCourseTrack],
		Target:          row[colCourseTarget],
		Quota:           row[colCourseQuota],
		Period:          formatPeriod(row[colCourseMonths], row[colCourseDays]),
		PeriodMonths:    row[colCourseMonths],
		PeriodDays:      row[colCourseDays],
		Time:            row[colCourseTime],
		Fee:             row[colCourseFee],
		FeePerHour:      row[colCourseFeeHour],
		MaterialFee:     row[colMaterialFee],
		MockExamFee:     row[colMockExamFee],
		MaterialsCost:   row[colMaterialsCost],
		MealFee:         row[colMealFee],
		SnackFee:        row[colSnackFee],
		DormFee:         row[colDormFee],
		TransportFee:    row[colTransportFee],
		OtherFee:        row[colOtherFee],
		UniformFee:      row[colUniformFee],
		OtherFeesTotal:  row[colOtherFeesTotal],
		TotalFee:        row[colTotalFee],
		TotalFeePerHour: row[colTotalFeeHour],
		DisclosureType:  row[colDisclosure],
		Remarks:         row[colCourseRemarks],
	}
}

func insuranceFromRow(row sheets.Row) model.Insurance {
	return model.Insurance{
		Type:                    row[colInsType],
		Company:                 row[colInsCompany],
		OtherType:               row[colInsOtherType],
		Contractor:              row[colInsContractor],
		PolicyNumber:            row[colInsPolicyNumber],
		CompensationPerPerson:   row[colInsPerPerson],
		CompensationPerAccident: row[colInsPerAccident],
		MedicalPerPerson:        row[colInsMedical],
		JoinDate:                row[colInsJoinDate],
		StartDate:               row[colInsStartDate],
		EndDate:                 row[colInsEndDate],
	}
}

// formatPeriod renders the course duration as "N개월 M일", substituting zero
// for missing parts the way the original listing does.
func formatPeriod(months, days string) string {
	return fmt.Sprintf("%s개월 %s일", withDefault(months, "0"), withDefault(days, "0"))
}

func withDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
