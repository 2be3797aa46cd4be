package locale

type Church struct {
	Name         string `json:"name"`
	Denomination string `json:"denomination"`
	Headquarters string `json:"headquarters"`
}

var Churches = []Church{
	{"Living Faith Church (Winners Chapel)", "Pentecostal", "Ota, Ogun State"},
	{"Christ Embassy", "Pentecostal", "Lagos"},
	{"Mountain of Fire and Miracles Ministries", "Pentecostal", "Lagos"},
	{"Deeper Christian Life Ministry", "Pentecostal", "Lagos"},
	{"Daystar Christian Centre", "Pentecostal", "Lagos"},
	{"House on the Rock", "Pentecostal", "Lagos"},
	{"The Fountain of Life Church", "Pentecostal", "Lagos"},
	{"Covenant Christian Centre", "Pentecostal", "Lagos"},
	{"This Present House", "Pentecostal", "Lagos"},
	{"The Elevation Church", "Pentecostal", "Lagos"},
	{"Trinity House", "Pentecostal", "Lagos"},
	{"Salvation Ministries", "Pentecostal", "Port Harcourt"},
	{"Omega Power Ministries", "Pentecostal", "Port Harcourt"},
	{"Streams of Joy International", "Pentecostal", "Abuja"},
	{"Dunamis International Gospel Centre", "Pentecostal", "Abuja"},
	{"Commonwealth of Zion Assembly (COZA)", "Pentecostal", "Abuja"},
	{"Potter's House Christian Centre", "Pentecostal", "Lagos"},
	{"Foursquare Gospel Church", "Pentecostal", "Lagos"},
	{"Assemblies of God Church", "Pentecostal", "Enugu"},
	{"Apostolic Church Nigeria", "Pentecostal", "Lagos"},
	{"Redeemed Christian Church of God (RCCG)", "Pentecostal", "Lagos"},
	{"Mountain Top Life Church", "Pentecostal", "Lagos"},
	{"Rhema Chapel International", "Pentecostal", "Ibadan"},
	{"Grace Assembly", "Pentecostal", "Lagos"},
	{"Glory Tabernacle Ministries", "Pentecostal", "Ilorin"},
	{"Catholic Church of Nigeria", "Catholic", "Abuja"},
	{"Anglican Church of Nigeria", "Anglican", "Abuja"},
	{"Methodist Church Nigeria", "Methodist", "Lagos"},
	{"Presbyterian Church of Nigeria", "Presbyterian", "Calabar"},
	{"Baptist Convention of Nigeria", "Baptist", "Ibadan"},
	{"Lutheran Church of Nigeria", "Lutheran", "Nsukka"},
	{"Church of Nigeria (Anglican Communion)", "Anglican", "Abuja"},
	{"Cherubim and Seraphim Movement", "Aladura", "Lagos"},
	{"Celestial Church of Christ", "Aladura", "Lagos"},
	{"Church of the Lord (Aladura)", "Aladura", "Ogere"},
}

var ServiceTypes = []string{
	"Sunday Service", "Midweek Service", "Prayer Meeting", "Bible Study",
	"Youth Service", "Children's Church", "Fellowship Meeting", "Evangelism Outreach",
	"Crusade", "Gospel Concert", "Seminar", "Workshop", "Conference",
	"Leadership Training", "Membership Class", "Water Baptism", "Holy Communion",
	"Night Vigil", "Thanksgiving Service", "Dedication Service", "Wedding",
	"Funeral Service", "Naming Ceremony", "House Fellowship", "Community Outreach",
}

var EventNames = []string{
	"January Special Revival", "Easter Celebration", "Workers' Retreat",
	"Annual Thanksgiving", "Youth Convention", "Women's Conference",
	"Men's Fellowship Summit", "Marriage Seminar", "Financial Freedom Series",
	"Healing and Deliverance Crusade", "Leadership Development Program",
	"New Members' Orientation", "Baptismal Class", "Foundation School",
	"Holy Ghost Congress", "Seven Days Fasting and Prayer", "New Year Service",
	"Christmas Carol", "End of Year Thanksgiving", "Church Anniversary",
	"Pastor's Appreciation Day", "Community Evangelism", "Campus Crusade",
	"Market Evangelism", "Hospital Visitation", "Prison Ministry",
	"Street Evangelism", "Door-to-Door Evangelism", "Online Evangelism",
}

// SermonThemes feed the theme field of seeded services.
var SermonThemes = []string{
	"Faith That Moves Mountains",
	"Walking in Divine Health",
	"The Power of Thanksgiving",
	"Breaking Generational Curses",
	"Financial Prosperity",
	"Marriage Success",
	"Raising Godly Children",
	"Spiritual Warfare",
	"The Holy Spirit",
	"Divine Direction",
}
