package model

// MedicalHistory represents one visit record. A patient may have any
// number of histories; the CI is not unique here and there is no link to
// the user who authored the record.
type MedicalHistory struct {
	Base
	Name       string `json:"name" db:"name"`
	Lastname   string `json:"lastname" db:"lastname"`
	Age        int    `json:"age" db:"age"`
	CI         string `json:"ci" db:"ci"`
	Email      string `json:"email" db:"email"`
	Phone      string `json:"phone" db:"phone"`
	Address    string `json:"address" db:"address"`
	Motive     string `json:"motive" db:"motive"`
	Diseases   string `json:"diseases" db:"diseases"`
	Background string `json:"background" db:"background"`
	FExam      string `json:"f_exam" db:"f_exam"`
	Diagnostic string `json:"diagnostic" db:"diagnostic"`
	Therapy    string `json:"therapy" db:"therapy"`
}

// HistoryForm carries both create and update submissions for a medical
// history. Age must parse as an integer; a non-numeric value fails the
// bind and no record is written.
type HistoryForm struct {
	Name       string `form:"name" binding:"required"`
	Lastname   string `form:"lastname" binding:"required"`
	Age        int    `form:"age" binding:"required"`
	CI         string `form:"ci" binding:"required"`
	Email      string `form:"email" binding:"required"`
	Phone      string `form:"phone" binding:"required"`
	Address    string `form:"address" binding:"required"`
	Motive     string `form:"motive" binding:"required"`
	Diseases   string `form:"diseases" binding:"required"`
	Background string `form:"background" binding:"required"`
	FExam      string `form:"f_exam" binding:"required"`
	Diagnostic string `form:"diagnostic" binding:"required"`
	Therapy    string `form:"therapy" binding:"required"`
}

// Record builds the stored representation from the submitted form.
func (f *HistoryForm) Record() *MedicalHistory {
	return &MedicalHistory{
		Name:       f.Name,
		Lastname:   f.Lastname,
		Age:        f.Age,
		CI:         f.CI,
		Email:      f.Email,
		Phone:      f.Phone,
		Address:    f.Address,
		Motive:     f.Motive,
		Diseases:   f.Diseases,
		Background: f.Background,
		FExam:      f.FExam,
		Diagnostic: f.Diagnostic,
		Therapy:    f.Therapy,
	}
}
