package entity

// Contact represents a Salesforce Contact linked to an Account through AccountId.
type Contact struct {
	ID         string `json:"Id"`
	Name       string `json:"Name"`
	Title      string `json:"Title"`
	Email      string `json:"Email"`
	Phone      string `json:"Phone"`
	Department string `json:"Department"`
}
