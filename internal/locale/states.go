package locale

// State is one row of the state table. LGAs are the sub-regions, Areas the named
// neighbourhoods used in street addresses.
type State struct {
	Name    string
	Capital string
	LGAs    []string
	Areas   []string
}

// States is ordered so sampling by index is stable under a seeded source.
var States = []State{
	{
		Name:    "Lagos",
		Capital: "Ikeja",
		LGAs: []string{
			"Ikeja", "Alimosho", "Ojo", "Mushin", "Ikorodu", "Eti-Osa", "Kosofe", "Apapa",
			"Ifako-Ijaiye", "Somolu", "Amuwo-Odofin", "Lagos Mainland", "Ibeju-Lekki", "Agege",
			"Badagry", "Oshodi-Isolo", "Surulere", "Ajeromi-Ifelodun",
		},
		Areas: []string{
			"Victoria Island", "Lekki", "Ikoyi", "Yaba", "Surulere", "Ikeja GRA", "Maryland",
			"Ogba", "Ojodu", "Magodo", "Gbagada", "Anthony", "Ilupeju", "Festac",
			"Satellite Town", "Okota", "Isolo", "Ejigbo", "Shomolu", "Bariga", "Akoka", "Igando",
			"Iyana Ipaja", "Egbeda", "Idimu", "Alakuko",
		},
	},
	{
		Name:    "Oyo",
		Capital: "Ibadan",
		LGAs: []string{
			"Ibadan North", "Ibadan South-West", "Ibadan South-East", "Ibadan North-West",
			"Ibadan North-East", "Ogbomosho North", "Ogbomosho South", "Oyo East", "Oyo West",
			"Saki East", "Saki West", "Iseyin", "Kajola", "Ibarapa East", "Ibarapa North",
			"Ibarapa Central", "Orelope", "Olorunsogo", "Itesiwaju", "Iwajowa",
		},
		Areas: []string{
			"Bodija", "Moniya", "Eleyele", "Dugbe", "Mokola", "Sango", "Ojoo", "Challenge",
			"Ring Road", "Apata", "Idi-Ape", "Oke-Ado", "Molete", "Beere", "Oje", "Agodi", "Gate",
			"Jericho", "Onireke",
		},
	},
	{
		Name:    "Ogun",
		Capital: "Abeokuta",
		LGAs: []string{
			"Abeokuta North", "Abeokuta South", "Ado-Odo/Ota", "Ewekoro", "Ifo", "Ijebu East",
			"Ijebu North", "Ijebu North East", "Ijebu Ode", "Ikenne", "Imeko Afon", "Ipokia",
			"Obafemi Owode", "Odeda", "Odogbolu", "Remo North", "Sagamu", "Yewa North",
			"Yewa South",
		},
		Areas: []string{
			"Sango-Ota", "Ijoko", "Agbara", "Atan", "Ifo", "Abeokuta", "Sagamu", "Ijebu Ode",
			"Ilaro", "Ipokia", "Idiroko", "Ayetoro", "Imeko",
		},
	},
	{
		Name:    "Ondo",
		Capital: "Akure",
		LGAs: []string{
			"Akoko North-East", "Akoko North-West", "Akoko South-East", "Akoko South-West",
			"Akure North", "Akure South", "Ese-Odo", "Idanre", "Ifedore", "Ilaje",
			"Ile-Oluji/Okeigbo", "Irele", "Odigbo", "Okitipupa", "Ondo East", "Ondo West", "Ose",
			"Owo",
		},
		Areas: []string{
			"Akure", "Ondo", "Owo", "Ikare", "Okitipupa", "Ile-Oluji", "Idanre", "Oba-Akoko",
			"Arigidi", "Epinmi", "Ifon", "Igbokoda",
		},
	},
	{
		Name:    "Osun",
		Capital: "Osogbo",
		LGAs: []string{
			"Aiyedaade", "Aiyedire", "Atakunmosa East", "Atakunmosa West", "Boluwaduro", "Boripe",
			"Ede North", "Ede South", "Egbedore", "Ejigbo", "Ife Central", "Ife East",
			"Ife North", "Ife South", "Ifedayo", "Ifelodun", "Ila", "Ilesa East", "Ilesa West",
			"Irepodun", "Irewole", "Isokan", "Iwo", "Obokun", "Odo Otin", "Ola Oluwa", "Olorunda",
			"Oriade", "Orolu",
		},
		Areas: []string{
			"Osogbo", "Ile-Ife", "Ilesa", "Iwo", "Ejigbo", "Ikire", "Ila-Orangun", "Ede",
			"Ikirun", "Ipetumodu", "Apomu", "Ode-Omu",
		},
	},
	{
		Name:    "Ekiti",
		Capital: "Ado-Ekiti",
		LGAs: []string{
			"Ado-Ekiti", "Efon", "Ekiti East", "Ekiti South-West", "Ekiti West", "Emure",
			"Gbonyin", "Ido-Osi", "Ijero", "Ikere", "Ikole", "Ilejemeje", "Irepodun/Ifelodun",
			"Ise/Orun", "Moba", "Oye",
		},
		Areas: []string{
			"Ado-Ekiti", "Ikere", "Ijero", "Oye", "Ikole", "Emure", "Ise", "Aramoko",
		},
	},
	{
		Name:    "Kwara",
		Capital: "Ilorin",
		LGAs: []string{
			"Asa", "Baruten", "Edu", "Ekiti", "Ifelodun", "Ilorin East", "Ilorin South",
			"Ilorin West", "Irepodun", "Isin", "Kaiama", "Moro", "Offa", "Oke Ero", "Oyun",
			"Pategi",
		},
		Areas: []string{
			"Ilorin", "Offa", "Omu-Aran", "Patigi", "Lafiagi", "Share",
		},
	},
	{
		Name:    "Kano",
		Capital: "Kano",
		LGAs: []string{
			"Ajingi", "Albasu", "Bagwai", "Bebeji", "Bichi", "Bunkure", "Dala", "Dambatta",
			"Dawakin Kudu", "Dawakin Tofa", "Doguwa", "Fagge", "Gabasawa", "Garko",
			"Garun Mallam", "Gaya", "Gezawa", "Gwale", "Gwarzo", "Kabo", "Kano Municipal",
			"Karaye", "Kibiya", "Kiru", "Kumbotso", "Kunchi", "Kura", "Madobi", "Makoda",
			"Minjibir", "Nasarawa", "Rano", "Rimin Gado", "Rogo", "Shanono", "Sumaila", "Takai",
			"Tarauni", "Tofa", "Tsanyawa", "Tudun Wada", "Ungogo", "Warawa", "Wudil",
		},
		Areas: []string{
			"Nasarawa GRA", "Bompai", "Sabon Gari", "Fagge", "Gwale", "Dala", "Kano Municipal",
			"Tarauni", "Nasarawa", "Ungogo",
		},
	},
	{
		Name:    "Kaduna",
		Capital: "Kaduna",
		LGAs: []string{
			"Birnin Gwari", "Chikun", "Giwa", "Igabi", "Ikara", "Jaba", "Jema'a", "Kachia",
			"Kaduna North", "Kaduna South", "Kagarko", "Kajuru", "Kaura", "Kauru", "Kubau",
			"Kudan", "Lere", "Makarfi", "Sabon Gari", "Sanga", "Soba", "Zangon Kataf", "Zaria",
		},
		Areas: []string{
			"Kaduna", "Zaria", "Kafanchan", "Barnawa", "Ungwan Rimi", "Tudun Wada", "Sabon Tasha",
			"Kakuri", "Kawo", "Rigasa", "Sabo",
		},
	},
	{
		Name:    "Katsina",
		Capital: "Katsina",
		LGAs: []string{
			"Bakori", "Batagarawa", "Batsari", "Baure", "Bindawa", "Charanchi", "Dan Musa",
			"Dandume", "Danja", "Daura", "Dutsi", "Dutsin Ma", "Faskari", "Funtua", "Ingawa",
			"Jibia", "Kafur", "Kaita", "Kankara", "Kankia", "Katsina", "Kurfi", "Kusada",
			"Mai'Adua", "Malumfashi", "Mani", "Mashi", "Matazu", "Musawa", "Rimi", "Sabuwa",
			"Safana", "Sandamu", "Zango",
		},
		Areas: []string{
			"Katsina", "Daura", "Funtua", "Malumfashi", "Kankia", "Jibia",
		},
	},
	{
		Name:    "Borno",
		Capital: "Maiduguri",
		LGAs: []string{
			"Abadam", "Askira/Uba", "Bama", "Bayo", "Biu", "Chibok", "Damboa", "Dikwa", "Gubio",
			"Guzamala", "Gwoza", "Hawul", "Jere", "Kaga", "Kala/Balge", "Konduga", "Kukawa",
			"Kwaya Kusar", "Mafa", "Magumeri", "Maiduguri", "Marte", "Mobbar", "Monguno", "Ngala",
			"Nganzai", "Shani",
		},
		Areas: []string{
			"Maiduguri", "Biu", "Monguno", "Gwoza", "Bama", "Dikwa", "Konduga",
		},
	},
	{
		Name:    "Rivers",
		Capital: "Port Harcourt",
		LGAs: []string{
			"Abua/Odual", "Ahoada East", "Ahoada West", "Akuku-Toru", "Andoni", "Asari-Toru",
			"Bonny", "Degema", "Eleme", "Emohua", "Etche", "Gokana", "Ikwerre", "Khana",
			"Obio/Akpor", "Ogba/Egbema/Ndoni", "Ogu/Bolo", "Okrika", "Omuma", "Opobo/Nkoro",
			"Oyigbo", "Port Harcourt", "Tai",
		},
		Areas: []string{
			"Port Harcourt", "Obio-Akpor", "Trans Amadi", "Rumukrushi", "Woji", "Rumuomasi",
			"Diobu", "Borokiri", "Aggrey", "Old GRA", "New GRA",
		},
	},
	{
		Name:    "Delta",
		Capital: "Asaba",
		LGAs: []string{
			"Aniocha North", "Aniocha South", "Bomadi", "Burutu", "Ethiope East", "Ethiope West",
			"Ika North East", "Ika South", "Isoko North", "Isoko South", "Ndokwa East",
			"Ndokwa West", "Okpe", "Oshimili North", "Oshimili South", "Patani", "Sapele", "Udu",
			"Ughelli North", "Ughelli South", "Ukwuani", "Uvwie", "Warri North", "Warri South",
			"Warri South West",
		},
		Areas: []string{
			"Asaba", "Warri", "Sapele", "Ughelli", "Ozoro", "Agbor", "Oleh", "Effurun", "Udu",
			"Ovwian", "Aladja", "Oghara",
		},
	},
	{
		Name:    "Edo",
		Capital: "Benin City",
		LGAs: []string{
			"Akoko-Edo", "Egor", "Esan Central", "Esan North-East", "Esan South-East",
			"Esan West", "Etsako Central", "Etsako East", "Etsako West", "Igueben", "Ikpoba Okha",
			"Orhionmwon", "Oredo", "Ovia North-East", "Ovia South-West", "Owan East", "Owan West",
			"Uhunmwonde",
		},
		Areas: []string{
			"Benin City", "Auchi", "Ekpoma", "Uromi", "Sabongida-Ora", "Igarra",
		},
	},
	{
		Name:    "Enugu",
		Capital: "Enugu",
		LGAs: []string{
			"Aninri", "Awgu", "Enugu East", "Enugu North", "Enugu South", "Ezeagu", "Igbo Etiti",
			"Igbo Eze North", "Igbo Eze South", "Isi Uzo", "Nkanu East", "Nkanu West", "Nsukka",
			"Oji River", "Udenu", "Udi", "Uzo-Uwani",
		},
		Areas: []string{
			"Enugu", "Nsukka", "Agbani", "Awgu", "Udi", "Oji River", "Ngwo",
		},
	},
	{
		Name:    "Anambra",
		Capital: "Awka",
		LGAs: []string{
			"Aguata", "Anambra East", "Anambra West", "Anaocha", "Awka North", "Awka South",
			"Ayamelum", "Dunukofia", "Ekwusigo", "Idemili North", "Idemili South", "Ihiala",
			"Njikoka", "Nnewi North", "Nnewi South", "Ogbaru", "Onitsha North", "Onitsha South",
			"Orumba North", "Orumba South", "Oyi",
		},
		Areas: []string{
			"Onitsha", "Nnewi", "Awka", "Ekwulobia", "Ihiala", "Obosi", "Nkpor",
		},
	},
	{
		Name:    "Imo",
		Capital: "Owerri",
		LGAs: []string{
			"Aboh Mbaise", "Ahiazu Mbaise", "Ehime Mbano", "Ezinihitte", "Ideato North",
			"Ideato South", "Ihitte/Uboma", "Ikeduru", "Isiala Mbano", "Isu", "Mbaitoli",
			"Ngor Okpala", "Njaba", "Nkwerre", "Nwangele", "Obowo", "Oguta", "Ohaji/Egbema",
			"Okigwe", "Orlu", "Orsu", "Oru East", "Oru West", "Owerri Municipal", "Owerri North",
			"Owerri West",
		},
		Areas: []string{
			"Owerri", "Orlu", "Okigwe", "Oguta", "Mbaise", "Nkwerre", "Orji",
		},
	},
	{
		Name:    "Abia",
		Capital: "Umuahia",
		LGAs: []string{
			"Aba North", "Aba South", "Arochukwu", "Bende", "Ikwuano", "Isiala Ngwa North",
			"Isiala Ngwa South", "Isuikwuato", "Obi Ngwa", "Ohafia", "Osisioma", "Ugwunagbo",
			"Ukwa East", "Ukwa West", "Umuahia North", "Umuahia South", "Umu Nneochi",
		},
		Areas: []string{
			"Aba", "Umuahia", "Ohafia", "Arochukwu", "Omoba", "Osisioma",
		},
	},
	{
		Name:    "Akwa Ibom",
		Capital: "Uyo",
		LGAs: []string{
			"Abak", "Eastern Obolo", "Eket", "Esit Eket", "Essien Udim", "Etim Ekpo", "Etinan",
			"Ibeno", "Ibesikpo Asutan", "Ibiono Ibom", "Ika", "Ikono", "Ikot Abasi",
			"Ikot Ekpene", "Ini", "Itu", "Mbo", "Mkpat Enin", "Nsit Atai", "Nsit Ibom",
			"Nsit Ubium", "Obot Akara", "Okobo", "Onna", "Oron", "Oruk Anam", "Udung Uko",
			"Ukanafun", "Uruan", "Urue Offong/Oruko", "Uyo",
		},
		Areas: []string{
			"Uyo", "Eket", "Ikot Ekpene", "Oron", "Abak", "Etinan", "Ikot Abasi",
		},
	},
	{
		Name:    "Cross River",
		Capital: "Calabar",
		LGAs: []string{
			"Abi", "Akamkpa", "Akpabuyo", "Bakassi", "Bekwarra", "Biase", "Boki",
			"Calabar Municipal", "Calabar South", "Etung", "Ikom", "Obanliku", "Obubra", "Obudu",
			"Odukpani", "Ogoja", "Yakurr", "Yala",
		},
		Areas: []string{
			"Calabar", "Ikom", "Obudu", "Ogoja", "Ugep", "Obubra",
		},
	},
	{
		Name:    "Plateau",
		Capital: "Jos",
		LGAs: []string{
			"Barkin Ladi", "Bassa", "Bokkos", "Jos East", "Jos North", "Jos South", "Kanam",
			"Kanke", "Langtang North", "Langtang South", "Mangu", "Mikang", "Pankshin",
			"Qua'an Pan", "Riyom", "Shendam", "Wase",
		},
		Areas: []string{
			"Jos", "Bukuru", "Langtang", "Pankshin", "Shendam", "Mangu",
		},
	},
	{
		Name:    "Niger",
		Capital: "Minna",
		LGAs: []string{
			"Agaie", "Agwara", "Bida", "Borgu", "Bosso", "Chanchaga", "Edati", "Gbako", "Gurara",
			"Katcha", "Kontagora", "Lapai", "Lavun", "Magama", "Mariga", "Mashegu", "Mokwa",
			"Moya", "Paikoro", "Rafi", "Rijau", "Shiroro", "Suleja", "Tafa", "Wushishi",
		},
		Areas: []string{
			"Minna", "Bida", "Suleja", "Kontagora", "New Bussa", "Lapai",
		},
	},
	{
		Name:    "Sokoto",
		Capital: "Sokoto",
		LGAs: []string{
			"Binji", "Bodinga", "Dange Shuni", "Gada", "Goronyo", "Gudu", "Gwadabawa", "Illela",
			"Isa", "Kebbe", "Kware", "Rabah", "Sabon Birni", "Shagari", "Silame", "Sokoto North",
			"Sokoto South", "Tambuwal", "Tangaza", "Tureta", "Wamako", "Wurno", "Yabo",
		},
		Areas: []string{
			"Sokoto", "Tambuwal", "Gwadabawa", "Wamako", "Bodinga",
		},
	},
	{
		Name:    "Zamfara",
		Capital: "Gusau",
		LGAs: []string{
			"Anka", "Bakura", "Birnin Magaji/Kiyaw", "Bukkuyum", "Bungudu", "Gummi", "Gusau",
			"Kaura Namoda", "Maradun", "Maru", "Shinkafi", "Talata Mafara", "Chafe", "Zurmi",
		},
		Areas: []string{
			"Gusau", "Kaura Namoda", "Talata Mafara", "Anka", "Gummi",
		},
	},
	{
		Name:    "Kebbi",
		Capital: "Birnin Kebbi",
		LGAs: []string{
			"Aleiro", "Arewa Dandi", "Argungu", "Augie", "Bagudo", "Birnin Kebbi", "Bunza",
			"Dandi", "Fakai", "Gwandu", "Jega", "Kalgo", "Koko/Besse", "Maiyama", "Ngaski",
			"Sakaba", "Shanga", "Suru", "Wasagu/Danko", "Yauri", "Zuru",
		},
		Areas: []string{
			"Birnin Kebbi", "Argungu", "Zuru", "Jega", "Yauri",
		},
	},
	{
		Name:    "Yobe",
		Capital: "Damaturu",
		LGAs: []string{
			"Bade", "Bursari", "Damaturu", "Fika", "Fune", "Geidam", "Gujba", "Gulani", "Jakusko",
			"Karasuwa", "Machina", "Nangere", "Nguru", "Potiskum", "Tarmuwa", "Yunusari",
			"Yusufari",
		},
		Areas: []string{
			"Damaturu", "Potiskum", "Gashua", "Nguru", "Geidam",
		},
	},
	{
		Name:    "Adamawa",
		Capital: "Yola",
		LGAs: []string{
			"Demsa", "Fufore", "Ganye", "Gayuk", "Girei", "Gombi", "Hong", "Jada", "Lamurde",
			"Madagali", "Maiha", "Mayo-Belwa", "Michika", "Mubi North", "Mubi South", "Numan",
			"Shelleng", "Song", "Toungo", "Yola North", "Yola South",
		},
		Areas: []string{
			"Yola", "Mubi", "Jimeta", "Numan", "Gombi", "Michika",
		},
	},
	{
		Name:    "Taraba",
		Capital: "Jalingo",
		LGAs: []string{
			"Ardo Kola", "Bali", "Donga", "Gashaka", "Gassol", "Ibi", "Jalingo", "Karim Lamido",
			"Kurmi", "Lau", "Sardauna", "Takum", "Ussa", "Wukari", "Yorro", "Zing",
		},
		Areas: []string{
			"Jalingo", "Wukari", "Bali", "Sardauna", "Gembu", "Zing",
		},
	},
	{
		Name:    "Benue",
		Capital: "Makurdi",
		LGAs: []string{
			"Ado", "Agatu", "Apa", "Buruku", "Gboko", "Guma", "Gwer East", "Gwer West",
			"Katsina-Ala", "Konshisha", "Kwande", "Logo", "Makurdi", "Obi", "Ogbadibo", "Ohimini",
			"Oju", "Okpokwu", "Otukpo", "Tarka", "Ukum", "Ushongo", "Vandeikya",
		},
		Areas: []string{
			"Makurdi", "Otukpo", "Gboko", "Katsina-Ala", "Vandeikya", "Oju",
		},
	},
	{
		Name:    "Ebonyi",
		Capital: "Abakaliki",
		LGAs: []string{
			"Abakaliki", "Afikpo North", "Afikpo South", "Ebonyi", "Ezza North", "Ezza South",
			"Ikwo", "Ishielu", "Ivo", "Izzi", "Ohaukwu", "Onicha",
		},
		Areas: []string{
			"Abakaliki", "Afikpo", "Onueke", "Ezza", "Ishielu",
		},
	},
	{
		Name:    "Nasarawa",
		Capital: "Lafia",
		LGAs: []string{
			"Akwanga", "Awe", "Doma", "Karu", "Keana", "Keffi", "Kokona", "Lafia", "Nasarawa",
			"Nasarawa Egon", "Obi", "Toto", "Wamba",
		},
		Areas: []string{
			"Lafia", "Keffi", "Akwanga", "Nasarawa", "Karu", "Doma",
		},
	},
	{
		Name:    "Gombe",
		Capital: "Gombe",
		LGAs: []string{
			"Akko", "Balanga", "Billiri", "Dukku", "Funakaye", "Gombe", "Kaltungo", "Kwami",
			"Nafada", "Shongom", "Yamaltu/Deba",
		},
		Areas: []string{
			"Gombe", "Kaltungo", "Billiri", "Dukku", "Nafada",
		},
	},
	{
		Name:    "Bayelsa",
		Capital: "Yenagoa",
		LGAs: []string{
			"Brass", "Ekeremor", "Kolokuma/Opokuma", "Nembe", "Ogbia", "Sagbama", "Southern Ijaw",
			"Yenagoa",
		},
		Areas: []string{
			"Yenagoa", "Amassoma", "Brass", "Ogbia", "Sagbama",
		},
	},
	{
		Name:    "Kogi",
		Capital: "Lokoja",
		LGAs: []string{
			"Adavi", "Ajaokuta", "Ankpa", "Bassa", "Dekina", "Ibaji", "Idah", "Igalamela-Odolu",
			"Ijumu", "Kabba/Bunu", "Kogi", "Lokoja", "Mopa-Muro", "Ofu", "Ogori/Magongo", "Okehi",
			"Okene", "Olamaboro", "Omala", "Yagba East", "Yagba West",
		},
		Areas: []string{
			"Lokoja", "Okene", "Anyigba", "Idah", "Kabba", "Ankpa",
		},
	},
	{
		Name:    "FCT Abuja",
		Capital: "Abuja",
		LGAs: []string{
			"Abaji", "Bwari", "Gwagwalada", "Kuje", "Kwali", "Municipal Area Council",
		},
		Areas: []string{
			"Wuse", "Garki", "Maitama", "Asokoro", "Jabi", "Utako", "Gwarinpa", "Kubwa", "Lugbe",
			"Gwagwalada", "Bwari", "Kuje", "Nyanya", "Karu",
		},
	},
}

var stateIndex = func() map[string]int {
	idx := make(map[string]int, len(States))
	for i, s := range States {
		idx[s.Name] = i
	}
	return idx
}()

// LookupState returns the table row for name.
func LookupState(name string) (State, bool) {
	i, ok := stateIndex[name]
	if !ok {
		return State{}, false
	}
	return States[i], true
}

// StateNames lists every state in table order.
func StateNames() []string {
	names := make([]string, len(States))
	for i, s := range States {
		names[i] = s.Name
	}
	return names
}
