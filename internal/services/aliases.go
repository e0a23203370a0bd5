package services

import "itinerary-service/internal/domain"

// aliasGroups lists known spellings, historical names and landmark phrasings
// per place. Lookup walks the table in order and the first group containing the
// normalized name wins.
var aliasGroups = []domain.AliasGroup{
	// Karnataka
	{Key: "bangalore", Variants: []string{"bangalore", "bengaluru", "bengalore", "bangaluru", "bengalooru", "bangalooru", "bengaloor", "bangaloor"}},
	{Key: "mysore", Variants: []string{"mysuru", "mysore", "mysur"}},
	{Key: "hampi", Variants: []string{"hampi", "hampe", "hampi ruins", "hampi temple"}},
	{Key: "gokarna", Variants: []string{"gokarna beach", "gokarna"}},
	{Key: "mangalore", Variants: []string{"mangaluru", "mangalore", "mangalooru", "mangaloor"}},
	{Key: "hubli", Variants: []string{"hubballi", "hubli", "dharwad"}},
	{Key: "belgaum", Variants: []string{"belagavi", "belgaum", "belagav"}},
	{Key: "gulbarga", Variants: []string{"kalaburagi", "gulbarga", "kalburgi"}},
	{Key: "bidar", Variants: []string{"bidar", "bidar fort"}},
	{Key: "bijapur", Variants: []string{"vijayapura", "bijapur", "bijapur fort"}},

	// Telangana
	{Key: "hyderabad", Variants: []string{"hyd", "hyderabad", "bhagyanagar", "hyderabad city"}},
	{Key: "warangal", Variants: []string{"warangal", "orugallu", "ekasila nagaram"}},
	{Key: "karimnagar", Variants: []string{"karimnagar", "elagandula"}},
	{Key: "nizamabad", Variants: []string{"nizamabad", "induru"}},
	{Key: "adilabad", Variants: []string{"adilabad", "edlabad"}},
	{Key: "khammam", Variants: []string{"khammam", "stambhadri"}},
	{Key: "medak", Variants: []string{"medak", "methuku"}},
	{Key: "nalgonda", Variants: []string{"nalgonda", "nilagiri"}},
	{Key: "rangareddy", Variants: []string{"rangareddy", "ranga reddy"}},
	{Key: "siddipet", Variants: []string{"siddipet", "siddipeta"}},

	// Andhra Pradesh
	{Key: "visakhapatnam", Variants: []string{"vizag", "visakhapatnam", "waltair", "vizag city"}},
	{Key: "vijayawada", Variants: []string{"vijayawada", "bezawada", "vijayawada city"}},
	{Key: "tirupati", Variants: []string{"tirupati temple", "tirupati"}},
	{Key: "guntur", Variants: []string{"guntur", "garthapuri"}},
	{Key: "nellore", Variants: []string{"nellore", "neluru"}},
	{Key: "kurnool", Variants: []string{"kurnool", "kandanavolu"}},
	{Key: "anantapur", Variants: []string{"anantapur", "anantapuram"}},
	{Key: "kadapa", Variants: []string{"kadapa", "cuddapah"}},
	{Key: "chittoor", Variants: []string{"chittoor", "chittur"}},
	{Key: "srikakulam", Variants: []string{"srikakulam", "chicacole"}},

	// Tamil Nadu
	{Key: "chennai", Variants: []string{"madras", "chennai", "chennai city"}},
	{Key: "madurai", Variants: []string{"madurai", "madura", "madurai city"}},
	{Key: "coimbatore", Variants: []string{"coimbatore", "kovai", "coimbatore city"}},
	{Key: "salem", Variants: []string{"salem", "sale"}},
	{Key: "tiruchirappalli", Variants: []string{"trichy", "tiruchirappalli", "trichinopoly"}},
	{Key: "thanjavur", Variants: []string{"tanjore", "thanjavur"}},
	{Key: "tirunelveli", Variants: []string{"tirunelveli", "nelveli"}},
	{Key: "tuticorin", Variants: []string{"thoothukudi", "tuticorin"}},
	{Key: "vellore", Variants: []string{"vellore", "velur"}},
	{Key: "dindigul", Variants: []string{"dindigul", "dindukal"}},

	// Kerala
	{Key: "thiruvananthapuram", Variants: []string{"trivandrum", "thiruvananthapuram", "tvm"}},
	{Key: "kochi", Variants: []string{"cochin", "kochi", "ernakulam", "kochi city"}},
	{Key: "kozhikode", Variants: []string{"calicut", "kozhikode", "calicut city"}},
	{Key: "thrissur", Variants: []string{"trichur", "thrissur"}},
	{Key: "kollam", Variants: []string{"quilon", "kollam"}},
	{Key: "kannur", Variants: []string{"cannanore", "kannur"}},
	{Key: "alappuzha", Variants: []string{"alleppey", "alappuzha"}},
	{Key: "palakkad", Variants: []string{"palghat", "palakkad"}},
	{Key: "malappuram", Variants: []string{"malappuram", "malapuram"}},
	{Key: "wayanad", Variants: []string{"wayanad", "waynad"}},

	// Goa
	{Key: "panaji", Variants: []string{"panjim", "panaji", "panaji city"}},
	{Key: "margao", Variants: []string{"madgaon", "margao"}},
	{Key: "vasco", Variants: []string{"vasco da gama", "vasco"}},
	{Key: "mapusa", Variants: []string{"mapusa", "mapuca"}},
	{Key: "ponda", Variants: []string{"ponda", "farmagudi"}},

	// Puducherry
	{Key: "puducherry", Variants: []string{"pondicherry", "pondy", "puducherry", "puducherry city"}},
	{Key: "karaikal", Variants: []string{"karaikal", "karikal"}},
	{Key: "mahe", Variants: []string{"mahe", "mayyazhi"}},
	{Key: "yanam", Variants: []string{"yanam", "yanam"}},

	// Hill Stations
	{Key: "ooty", Variants: []string{"udhagamandalam", "ooty", "ooty hill station"}},
	{Key: "kodaikanal", Variants: []string{"kodaikanal", "kodai", "kodaikanal hill station"}},
	{Key: "munnar", Variants: []string{"munnar", "munar", "munnar hill station"}},
	{Key: "yercaud", Variants: []string{"yercaud", "yerkaud"}},
	{Key: "coonoor", Variants: []string{"coonoor", "kunur"}},
	{Key: "valparai", Variants: []string{"valparai", "valparai hills"}},
	{Key: "kolli hills", Variants: []string{"kolli hills", "kollimalai"}},
	{Key: "br hills", Variants: []string{"br hills", "biligiriranga hills"}},
	{Key: "nandi hills", Variants: []string{"nandi hills", "nandidurga"}},
	{Key: "skandagiri", Variants: []string{"skandagiri", "kalavara durga"}},

	// Beaches
	{Key: "kovalam", Variants: []string{"kovalam", "kovalam beach"}},
	{Key: "varkala", Variants: []string{"varkala", "varkala cliff"}},
	{Key: "marina", Variants: []string{"marina beach", "marina"}},
	{Key: "palolem", Variants: []string{"palolem", "palolem beach"}},
	{Key: "baga", Variants: []string{"baga beach", "baga"}},
	{Key: "calangute", Variants: []string{"calangute beach", "calangute"}},
	{Key: "anjuna", Variants: []string{"anjuna beach", "anjuna"}},
	{Key: "colva", Variants: []string{"colva beach", "colva"}},
	{Key: "paradise", Variants: []string{"paradise beach", "paradise"}},

	// Temples
	{Key: "meenakshi", Variants: []string{"meenakshi temple", "meenakshi"}},
	{Key: "padmanabhaswamy", Variants: []string{"padmanabhaswamy temple", "padmanabhaswamy"}},
	{Key: "sabarimala", Variants: []string{"sabarimala temple", "sabarimala"}},
	{Key: "guruvayur", Variants: []string{"guruvayur temple", "guruvayur"}},
	{Key: "srirangam", Variants: []string{"srirangam temple", "srirangam"}},
	{Key: "tiruvannamalai", Variants: []string{"tiruvannamalai temple", "tiruvannamalai"}},
	{Key: "chidambaram", Variants: []string{"chidambaram temple", "chidambaram"}},
	{Key: "rameshwaram", Variants: []string{"rameshwaram temple", "rameshwaram"}},
	{Key: "kanyakumari", Variants: []string{"kanyakumari temple", "kanyakumari"}},
}
