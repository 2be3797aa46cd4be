package entity

type ClientSettings struct {
	Timezone   string `json:"timezone" bson:"timezone"`
	Currency   string `json:"currency" bson:"currency"`
	Language   string `json:"language" bson:"language"`
	DateFormat string `json:"date_format" bson:"date_format"`
}

type ServiceTimes struct {
	Sunday    string `json:"sunday" bson:"sunday"`
	Wednesday string `json:"wednesday" bson:"wednesday"`
	Friday    string `json:"friday" bson:"friday"`
}

type Branch struct {
	ID      string `json:"id" bson:"id"`
	Name    string `json:"name" bson:"name"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Address string `json:"address" bson:"address"`
	Pastor  string `json:"pastor" bson:"pastor"`
	Phone   string `json:"phone" bson:"phone"`
}

// Client is the tenant: one church. Its ID doubles as the tenant id.
type Client struct {
	Base           `bson:",inline"`
	Name           string         `json:"name" bson:"name"`
	Type           string         `json:"type" bson:"type"`
	Status         string         `json:"status" bson:"status"`
	Address        string         `json:"address" bson:"address"`
	City           string         `json:"city" bson:"city"`
	State          string         `json:"state" bson:"state"`
	Country        string         `json:"country" bson:"country"`
	Phone          string         `json:"phone" bson:"phone"`
	Email          string         `json:"email" bson:"email"`
	Website        string         `json:"website" bson:"website"`
	PastorInCharge string         `json:"pastor_in_charge" bson:"pastor_in_charge"`
	FoundedYear    int            `json:"founded_year" bson:"founded_year"`
	MemberCount    int            `json:"member_count" bson:"member_count"`
	Description    string         `json:"description" bson:"description"`
	Doctrine       string         `json:"doctrine" bson:"doctrine"`
	ServiceTimes   ServiceTimes   `json:"service_times" bson:"service_times"`
	LogoURL        string         `json:"logo_url" bson:"logo_url"`
	Settings       ClientSettings `json:"settings" bson:"settings"`
	Branches       []Branch       `json:"branches" bson:"branches"`
}
