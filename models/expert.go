package models

// Expert is immutable reference data describing the bookable expert.
type Expert struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Title             string       `json:"title"`
	AvatarURL         string       `json:"avatarUrl"`
	Rating            float64      `json:"rating"`
	ReviewCount       int          `json:"reviewCount"`
	HourlyRate        float64      `json:"hourlyRate"`
	ShortBio          string       `json:"shortBio"`
	FullBio           string       `json:"fullBio"`
	Specialties       []string     `json:"specialties"`
	Credentials       []Credential `json:"credentials"`
	Reviews           []Review     `json:"reviews"`
	Languages         []string     `json:"languages"`
	YearsOfExperience int          `json:"yearsOfExperience"`
}

// Credential is a degree or certification held by the expert.
type Credential struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// Review is a past client review of one of the expert's services.
type Review struct {
	ID          string  `json:"id"`
	Author      string  `json:"author"`
	Rating      float64 `json:"rating"`
	Date        string  `json:"date"`
	Comment     string  `json:"comment"`
	ServiceType string  `json:"serviceType"`
}
