// Package locale holds the Nigerian reference tables used to generate demo data.
// Entries are deduplicated so uniform sampling gives every value the same weight.
package locale

var MaleFirstNames = []string{
	"Emmanuel", "Daniel", "Samuel", "David", "John", "Joseph", "Michael", "James",
	"Peter", "Paul", "Stephen", "Matthew", "Andrew", "Thomas", "Simon", "Timothy",
	"Abraham", "Isaac", "Jacob", "Moses", "Joshua", "Caleb", "Aaron", "Elijah",
	"Elisha", "Isaiah", "Jeremiah", "Ezekiel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk", "Zephaniah", "Haggai", "Zechariah",
	"Chinedu", "Chukwuemeka", "Obinna", "Chukwudi", "Chigozie", "Chima", "Chidi",
	"Ifeanyi", "Uchenna", "Uzoma", "Ugochukwu", "Uzochukwu", "Tochukwu", "Kelechi",
	"Olumide", "Olusegun", "Oluseun", "Olufemi", "Oluwasegun", "Oluwaseyi",
	"Oluwaseun", "Oluwafemi", "Oluwatosin", "Oluwatobi", "Oluwagbenga", "Oluwadamilare",
	"Adeola", "Adebayo", "Ademola", "Adeyemi", "Adewale", "Adegoke", "Adetokunbo",
	"Yakubu", "Yusuf", "Ibrahim", "Abubakar", "Mustapha", "Musa", "Suleiman", "Haruna",
	"Fatih", "Khalid", "Omar", "Bashir", "Aminu", "Kabir", "Umar", "Jibril",
	"Bamidele", "Ayodele", "Ayotunde", "Ayo", "Tunde", "Dele", "Wale", "Femi",
	"Kunle", "Segun", "Tosin", "Tayo", "Gbenga", "Gbadebo", "Bankole", "Akin",
	"Akintunde", "Akinwale", "Akinola", "Akinyemi", "Akinsola", "Akintayo",
}

var FemaleFirstNames = []string{
	"Mary", "Sarah", "Elizabeth", "Grace", "Joy", "Peace", "Patience", "Faith",
	"Hope", "Charity", "Mercy", "Blessing", "Favour", "Gift", "Glory", "Precious",
	"Deborah", "Esther", "Ruth", "Hannah", "Abigail", "Rebecca", "Rachel", "Leah",
	"Martha", "Anna", "Dorcas", "Lydia", "Priscilla", "Phoebe", "Junia",
	"Chioma", "Chidinma", "Chiamaka", "Chinonso", "Chinyere", "Chizoba", "Chinelo",
	"Ifeoma", "Ifeyinwa", "Ngozi", "Nkechi", "Nkiruka", "Nkem", "Adaeze", "Adaobi",
	"Oluchi", "Olufunke", "Olufunmilayo", "Oluremi", "Oluwatoyin", "Oluwakemi",
	"Oluwaseun", "Oluwafunmilayo", "Oluwatobi", "Oluwadamilola", "Oluwabusola",
	"Adebimpe", "Adebisi", "Adenike", "Adebola", "Adetutu", "Adepeju", "Aderonke",
	"Aisha", "Fatima", "Halima", "Hauwa", "Khadija", "Maryam", "Nafisa", "Rahila",
	"Safiya", "Zainab", "Amina", "Asmau", "Balaraba", "Fadila", "Hafsah", "Jamila",
	"Ayomide", "Ayobami", "Wunmi", "Funmi", "Kemi", "Tosin", "Tayo", "Bimbo",
	"Bimpe", "Banke",
}

var Surnames = []string{
	// Yoruba
	"Adeyemi", "Adeleke", "Adekunle", "Adesanya", "Adewale", "Adegoke", "Adetokunbo",
	"Adebayo", "Adebisi", "Adeniyi", "Adejumo", "Aderemi", "Adesina", "Adewumi",
	"Adeyinka", "Adeoye", "Adetunji", "Adelaja", "Adegbola", "Adegbite", "Adekanbi",
	"Ogunlesi", "Ogunsanya", "Ogundele", "Ogunwale", "Oguntade", "Ogunleye",
	"Ogunjobi", "Ogunnaike", "Ogunyemi", "Ogunrinde", "Ogunremi", "Ogunjimi",
	"Fashola", "Fasina", "Fasoro", "Fasusi", "Fasanya", "Fasonu", "Fasiku",
	"Bakare", "Balogun", "Bankole", "Bamidele", "Bamgbose", "Bamiro", "Bamtefa",
	"Oyediran", "Oyekan", "Oyelaran", "Oyelese", "Oyeleye", "Oyeniyi", "Oyewole",
	"Olaniyi", "Olaniran", "Olanipekun", "Olarewaju", "Olatunji", "Olatunde", "Olaoye",
	"Oni", "Onifade", "Onigbinde", "Oniyide", "Onipede", "Oniwinde",
	"Ojo", "Ojikutu", "Ojewale", "Ojoawo", "Ojogbon", "Ojutiku", "Ojulari",
	"Okunola", "Okunowo", "Okuneye", "Okungbowa", "Okunlola", "Okunniyi",
	"Oladipo", "Oladimeji", "Oladokun", "Oladoyin", "Oladunni", "Oladunjoye", "Oladapo",
	"Olajide", "Olajire", "Olajubu", "Olakunle", "Olalere", "Olamiju",
	"Olanrewaju", "Olatubosun", "Olawale", "Olayemi",
	"Olowe", "Olowookere", "Olowu", "Oshodi", "Oshin", "Osho", "Oshuntokun",
	"Shonibare", "Shonubi", "Shosanya", "Shoyombo", "Soyinka", "Soyombo", "Soyemi",
	"Ajao", "Ajala", "Ajani", "Ajayi", "Ajibade", "Ajibola", "Ajiboye",
	"Akindele", "Akinkugbe", "Akinleye", "Akinlade", "Akinola", "Akinpelu",
	"Akintola", "Akintunde", "Akinwale", "Akinwande", "Akinwumi", "Akinyele", "Akinyemi",
	// Igbo
	"Okonkwo", "Okorie", "Okoro", "Okoye", "Okpara", "Nnamdi", "Nnaji", "Nnadi",
	"Nnamani", "Nwagwu", "Nwachukwu", "Nwadike", "Nwaeze", "Nwankwo", "Nwaogu",
	"Obi", "Obiano", "Obika", "Obikwelu", "Okafor", "Okagbue", "Okereafor",
	"Onu", "Onuoha", "Onuigbo", "Eze", "Ezeani", "Ezechukwu", "Ezekwesili",
	"Ibe", "Ibeanu", "Ibekwe", "Ude", "Udechukwu", "Udeh", "Ugochukwu", "Ugorji", "Ugwoke",
	"Okeke", "Okechukwu", "Okereke", "Okezie", "Chukwu", "Chukwudi", "Chukwuemeka",
	"Chukwuma", "Anya", "Anyanwu", "Madu", "Maduabuchi", "Madueke", "Maduka",
	"Ike", "Ikemefuna", "Ikenna", "Uche", "Uchechukwu", "Uchendu", "Uchenna",
	// Hausa/Fulani
	"Abdullahi", "Abubakar", "Adamu", "Ahmad", "Aliyu", "Aminu", "Atiku", "Bala",
	"Bashir", "Bello", "Danjuma", "Dauda", "Gambo", "Garba", "Gidado", "Goni",
	"Habib", "Hassan", "Ibrahim", "Idris", "Isa", "Ismail", "Jibril", "Kabir",
	"Lawan", "Mahmud", "Mamman", "Mohammed", "Musa", "Mustapha", "Nuhu",
	"Rabiu", "Sabo", "Sadiq", "Salihu", "Sani", "Shehu", "Suleiman",
	"Tijjani", "Umar", "Usman", "Yahaya", "Yakubu", "Yusuf", "Zakari", "Zubairu",
	// Other
	"Peters", "Johnson", "Williams", "Davies", "Robinson", "Thompson", "Evans",
	"Walker", "White", "Green", "Hall", "Lewis", "Jackson", "Clarke",
}

var Occupations = []string{
	"Teacher", "Lecturer", "Doctor", "Nurse", "Pharmacist", "Lawyer", "Engineer",
	"Accountant", "Banker", "Architect", "Surveyor", "Civil Servant",
	"Business Owner", "Trader", "Entrepreneur", "Importer", "Exporter",
	"Fashion Designer", "Tailor", "Carpenter", "Mason", "Electrician",
	"Plumber", "Mechanic", "Driver", "Transport Operator",
	"Software Developer", "Web Developer", "Graphic Designer", "Data Analyst",
	"IT Consultant", "Network Engineer", "Cybersecurity Analyst",
	"Hair Stylist", "Barber", "Chef", "Caterer", "Event Planner",
	"Photographer", "Videographer", "Musician", "Actor", "Artist",
	"Student", "Unemployed", "Retired", "Housewife", "Househusband",
	"Farmer", "Fisherman", "Security Personnel", "Cleaner", "Sales Representative",
	"Marketing Executive", "Human Resources Manager", "Admin Officer",
}
