package locale

// PhonePrefixes are the carrier prefixes of MTN, Airtel, 9mobile and Glo lines.
var PhonePrefixes = []string{
	"0803", "0805", "0806", "0807", "0809", "0810", "0813", "0814", "0816", "0818",
	"0903", "0906", "0913", "0916", "0802", "0808", "0812", "0708", "0902", "0907",
	"0901", "0912", "0911", "0817", "0908", "0909", "0705", "0815", "0811", "0905",
	"0915",
}

var EmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"icloud.com", "mail.com", "yahoomail.com",
}

var StreetTypes = []string{
	"Street", "Road", "Avenue", "Close", "Crescent", "Drive", "Way", "Lane",
}

var StreetNames = []string{
	"Church", "Market", "Hospital", "School", "Community", "Unity", "Peace",
	"Liberty", "Independence", "Adekunle", "Ogunleye", "Adesanya", "Ojo",
	"Emmanuel", "Grace", "Faith", "Hope", "Charity", "Victory", "Success",
	"Cooperative", "Industrial", "Commercial", "Residential",
}

// IsPhonePrefix reports whether p is one of the known carrier prefixes.
func IsPhonePrefix(p string) bool {
	for _, known := range PhonePrefixes {
		if known == p {
			return true
		}
	}
	return false
}
