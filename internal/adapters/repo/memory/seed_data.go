package memory

import "github.com/crateside/vinylvault/internal/domain"

// seedVinyls is the fixed starting catalog for a fresh process.
var seedVinyls = []domain.Vinyl{
	{
		Artist:        "Pink Floyd",
		ReleaseTitle:  "The Dark Side of the Moon",
		Label:         "Harvest",
		CatalogNumber: "SHVL 804",
		Format:        domain.FormatLP,
		CountryOfRelease: "UK",
		YearOfRelease:    "1973",
		EditionNotes:     "First UK pressing",
		MediaGrade:       domain.GradeVeryGoodPlus,
		SleeveGrade:      domain.GradeVeryGood,
		PlayTested:       true,
		OriginalInnerSleeveIncluded: true,
		OriginalInsertsIncluded:     true,
		Price:        "$150.00",
		InStore:      true,
		Online:       true,
		Quantity:     1,
		Location:     "Shelf 1",
		Marketplaces: []domain.Marketplace{domain.MarketplaceDiscogs, domain.MarketplaceEBay},
		Status:       domain.StatusActive,
		OnlineSettings: &domain.OnlineSettings{
			ListingDescription: "Original UK pressing in great condition",
			SKU:                "PF-DSOTM-001",
			PerMarketplace: map[domain.Marketplace]domain.MarketplaceSettings{
				domain.MarketplaceDiscogs: {Status: "active"},
				domain.MarketplaceEBay:    {Status: "active", PriceOverride: "$165.00"},
			},
		},
	},
	{
		Artist:        "The Beatles",
		ReleaseTitle:  "Abbey Road",
		Label:         "Apple Records",
		CatalogNumber: "PCS 7088",
		Format:        domain.FormatLP,
		CountryOfRelease: "UK",
		YearOfRelease:    "1969",
		EditionNotes:     "Original pressing",
		MediaGrade:       domain.GradeVeryGood,
		SleeveGrade:      domain.GradeGoodPlus,
		PlayTested:       true,
		Price:        "$85.00",
		InStore:      true,
		Quantity:     2,
		Location:     "Bin A",
		Marketplaces: []domain.Marketplace{},
		Status:       domain.StatusActive,
	},
	{
		Artist:        "Daft Punk",
		ReleaseTitle:  "Random Access Memories",
		Label:         "Columbia",
		CatalogNumber: "88883716861",
		Format:        domain.FormatLP,
		CountryOfRelease: "EU",
		YearOfRelease:    "2013",
		EditionNotes:     "180g pressing",
		MediaGrade:       domain.GradeNearMint,
		SleeveGrade:      domain.GradeNearMint,
		SealedCopy:       true,
		ShrinkOriginal:   true,
		Price:        "$45.00",
		Online:       true,
		Quantity:     1,
		Location:     "New Arrivals",
		Marketplaces: []domain.Marketplace{domain.MarketplaceDiscogs},
		Status:       domain.StatusActive,
		OnlineSettings: &domain.OnlineSettings{
			ListingTitleOverride: "Daft Punk - RAM - SEALED 180g",
			SKU:                  "DP-RAM-001",
			PerMarketplace: map[domain.Marketplace]domain.MarketplaceSettings{
				domain.MarketplaceDiscogs: {Status: "active"},
			},
		},
	},
	{
		Artist:        "Miles Davis",
		ReleaseTitle:  "Kind of Blue",
		Label:         "Columbia",
		CatalogNumber: "CL 1355",
		Format:        domain.FormatLP,
		CountryOfRelease: "US",
		YearOfRelease:    "1959",
		EditionNotes:     "Six-eye label mono",
		MatrixRunoutSideA: "XLP 41657",
		MatrixRunoutSideB: "XLP 41658",
		MasteringIdentifiersPresent: true,
		MediaGrade:  domain.GradeVeryGoodPlus,
		SleeveGrade: domain.GradeVeryGoodPlus,
		PlayTested:  true,
		OriginalInnerSleeveIncluded: true,
		Price:           "$275.00",
		InStore:         true,
		Online:          true,
		HoldForCustomer: true,
		Quantity:        1,
		Location:        "Featured",
		Marketplaces:    []domain.Marketplace{domain.MarketplaceEBay, domain.MarketplaceDiscogs},
		Status:          domain.StatusActive,
		OnlineSettings: &domain.OnlineSettings{
			ListingDescription:  "Rare six-eye mono pressing",
			SKU:                 "MD-KOB-001",
			ShippingProfileName: "Premium Vinyl",
			PerMarketplace: map[domain.Marketplace]domain.MarketplaceSettings{
				domain.MarketplaceEBay:    {Status: "active", PriceOverride: "$295.00"},
				domain.MarketplaceDiscogs: {Status: "active"},
			},
		},
	},
	{
		Artist:        "Fleetwood Mac",
		ReleaseTitle:  "Rumours",
		Label:         "Warner Bros.",
		CatalogNumber: "BSK 3010",
		Format:        domain.FormatLP,
		CountryOfRelease: "US",
		YearOfRelease:    "1977",
		MediaGrade:       domain.GradeGoodPlus,
		SleeveGrade:      domain.GradeGood,
		PlayTested:       true,
		PlaybackIssues:   true,
		PlaybackNotes:    "Light surface noise on side A",
		WarpPresent:      true,
		SeamSplitsPresent: true,
		WritingOrStickersOnSleeveOrLabels: true,
		SellerNotes:  "Play copy, priced accordingly",
		Price:        "$15.00",
		InStore:      true,
		Quantity:     1,
		Location:     "Bin B",
		Marketplaces: []domain.Marketplace{},
		Status:       domain.StatusActive,
	},
}

var seedShops = []domain.Shop{
	{Name: "Vinyl Paradise", Phone: "(555) 123-4567", Email: "info@vinylparadise.com"},
	{Name: "Groove Records", Phone: "(555) 234-5678", Email: "sales@grooverecords.com"},
	{Name: "Spin City Vinyl", Phone: "(555) 345-6789", Email: "contact@spincityvinyl.com"},
	{Name: "Wax Trax Records", Phone: "(555) 456-7890", Email: "orders@waxtrax.com"},
	{Name: "Record Emporium", Phone: "(555) 567-8901", Email: "hello@recordemporium.com"},
	{Name: "Dusty Grooves", Phone: "(555) 678-9012", Email: "info@dustygrooves.com"},
	{Name: "Analog Dreams", Phone: "(555) 789-0123", Email: "shop@analogdreams.com"},
	{Name: "The Record Exchange", Phone: "(555) 890-1234", Email: "trade@recordexchange.com"},
	{Name: "Vintage Vinyl Co", Phone: "(555) 901-2345", Email: "support@vintagevinylco.com"},
	{Name: "Sound Garden Records", Phone: "(555) 012-3456", Email: "music@soundgardenrecords.com"},
}

// listingTemplates feed the simulated cross-shop directory and the seeded
// sales history.
var listingTemplates = []domain.NetworkListing{
	{Artist: "Led Zeppelin", ReleaseTitle: "Led Zeppelin IV", Label: "Atlantic", CatalogNumber: "SD 7208", Format: domain.FormatLP, Price: "$120.00"},
	{Artist: "Nirvana", ReleaseTitle: "Nevermind", Label: "DGC", CatalogNumber: "DGC-24425", Format: domain.FormatLP, Price: "$85.00"},
	{Artist: "The Clash", ReleaseTitle: "London Calling", Label: "CBS", CatalogNumber: "CLASH 3", Format: domain.FormatLP, Price: "$95.00"},
	{Artist: "David Bowie", ReleaseTitle: "The Rise and Fall of Ziggy Stardust", Label: "RCA Victor", CatalogNumber: "LSP-4702", Format: domain.FormatLP, Price: "$150.00"},
	{Artist: "Radiohead", ReleaseTitle: "OK Computer", Label: "Parlophone", CatalogNumber: "7243 8 55229 1 9", Format: domain.FormatLP, Price: "$75.00"},
	{Artist: "The Velvet Underground", ReleaseTitle: "The Velvet Underground & Nico", Label: "Verve", CatalogNumber: "V6-5008", Format: domain.FormatLP, Price: "$280.00"},
	{Artist: "Prince", ReleaseTitle: "Purple Rain", Label: "Warner Bros.", CatalogNumber: "25110-1", Format: domain.FormatLP, Price: "$55.00"},
	{Artist: "Michael Jackson", ReleaseTitle: "Thriller", Label: "Epic", CatalogNumber: "QE 38112", Format: domain.FormatLP, Price: "$45.00"},
	{Artist: "Talking Heads", ReleaseTitle: "Remain in Light", Label: "Sire", CatalogNumber: "SRK 6095", Format: domain.FormatLP, Price: "$65.00"},
	{Artist: "Joy Division", ReleaseTitle: "Unknown Pleasures", Label: "Factory", CatalogNumber: "FACT 10", Format: domain.FormatLP, Price: "$180.00"},
	{Artist: "Kraftwerk", ReleaseTitle: "Trans-Europe Express", Label: "Kling Klang", CatalogNumber: "1C 064-82 306", Format: domain.FormatLP, Price: "$90.00"},
	{Artist: "Bob Dylan", ReleaseTitle: "Highway 61 Revisited", Label: "Columbia", CatalogNumber: "CS 9189", Format: domain.FormatLP, Price: "$200.00"},
	{Artist: "The Rolling Stones", ReleaseTitle: "Exile on Main St.", Label: "Rolling Stones Records", CatalogNumber: "COC 69100", Format: domain.FormatLP, Price: "$110.00"},
	{Artist: "Joni Mitchell", ReleaseTitle: "Blue", Label: "Reprise", CatalogNumber: "MS 2038", Format: domain.FormatLP, Price: "$125.00"},
	{Artist: "Stevie Wonder", ReleaseTitle: "Songs in the Key of Life", Label: "Tamla", CatalogNumber: "T13-340C2", Format: domain.FormatLP, Price: "$80.00"},
	{Artist: "The Smiths", ReleaseTitle: "The Queen Is Dead", Label: "Rough Trade", CatalogNumber: "ROUGH 96", Format: domain.FormatLP, Price: "$95.00"},
	{Artist: "Pixies", ReleaseTitle: "Doolittle", Label: "4AD", CatalogNumber: "CAD 905", Format: domain.FormatLP, Price: "$70.00"},
	{Artist: "Sonic Youth", ReleaseTitle: "Daydream Nation", Label: "Enigma", CatalogNumber: "75403-1", Format: domain.FormatLP, Price: "$85.00"},
	{Artist: "The Cure", ReleaseTitle: "Disintegration", Label: "Fiction", CatalogNumber: "FIXH 14", Format: domain.FormatLP, Price: "$100.00"},
	{Artist: "New Order", ReleaseTitle: "Power, Corruption & Lies", Label: "Factory", CatalogNumber: "FACT 75", Format: domain.FormatLP, Price: "$90.00"},
	{Artist: "Depeche Mode", ReleaseTitle: "Violator", Label: "Mute", CatalogNumber: "STUMM 64", Format: domain.FormatLP, Price: "$75.00"},
	{Artist: "U2", ReleaseTitle: "The Joshua Tree", Label: "Island", CatalogNumber: "U2 6", Format: domain.FormatLP, Price: "$60.00"},
	{Artist: "R.E.M.", ReleaseTitle: "Automatic for the People", Label: "Warner Bros.", CatalogNumber: "9 45055-1", Format: domain.FormatLP, Price: "$55.00"},
	{Artist: "The Stone Roses", ReleaseTitle: "The Stone Roses", Label: "Silvertone", CatalogNumber: "ORE LP 502", Format: domain.FormatLP, Price: "$130.00"},
	{Artist: "My Bloody Valentine", ReleaseTitle: "Loveless", Label: "Creation", CatalogNumber: "CRELP 060", Format: domain.FormatLP, Price: "$175.00"},
	{Artist: "Massive Attack", ReleaseTitle: "Blue Lines", Label: "Wild Bunch", CatalogNumber: "WBRLP 1", Format: domain.FormatLP, Price: "$85.00"},
	{Artist: "Portishead", ReleaseTitle: "Dummy", Label: "Go! Beat", CatalogNumber: "828 553-1", Format: domain.FormatLP, Price: "$95.00"},
	{Artist: "Bjork", ReleaseTitle: "Homogenic", Label: "One Little Indian", CatalogNumber: "TPLP 71", Format: domain.FormatLP, Price: "$80.00"},
	{Artist: "Aphex Twin", ReleaseTitle: "Selected Ambient Works 85-92", Label: "Apollo", CatalogNumber: "AMB LP 3922", Format: domain.FormatLP, Price: "$120.00"},
	{Artist: "Boards of Canada", ReleaseTitle: "Music Has the Right to Children", Label: "Warp", CatalogNumber: "WARP LP 55", Format: domain.FormatLP, Price: "$110.00"},
	{Artist: "Burial", ReleaseTitle: "Untrue", Label: "Hyperdub", CatalogNumber: "HDBLP 002", Format: domain.FormatLP, Price: "$65.00"},
	{Artist: "LCD Soundsystem", ReleaseTitle: "Sound of Silver", Label: "DFA", CatalogNumber: "DFA2161", Format: domain.FormatLP, Price: "$55.00"},
	{Artist: "Arcade Fire", ReleaseTitle: "Funeral", Label: "Merge", CatalogNumber: "MRG262", Format: domain.FormatLP, Price: "$50.00"},
	{Artist: "Tame Impala", ReleaseTitle: "Currents", Label: "Modular", CatalogNumber: "MODVL 170", Format: domain.FormatLP, Price: "$45.00"},
	{Artist: "Frank Ocean", ReleaseTitle: "Blonde", Label: "Boys Don't Cry", CatalogNumber: "BDC-001", Format: domain.FormatLP, Price: "$150.00"},
	{Artist: "Kendrick Lamar", ReleaseTitle: "To Pimp a Butterfly", Label: "Top Dawg", CatalogNumber: "TDE 001", Format: domain.FormatLP, Price: "$40.00"},
	{Artist: "Wu-Tang Clan", ReleaseTitle: "Enter the Wu-Tang (36 Chambers)", Label: "Loud", CatalogNumber: "07863-66336-1", Format: domain.FormatLP, Price: "$90.00"},
	{Artist: "Nas", ReleaseTitle: "Illmatic", Label: "Columbia", CatalogNumber: "C 57684", Format: domain.FormatLP, Price: "$95.00"},
	{Artist: "Marvin Gaye", ReleaseTitle: "What's Going On", Label: "Tamla", CatalogNumber: "TS 310", Format: domain.FormatLP, Price: "$175.00"},
	{Artist: "Aretha Franklin", ReleaseTitle: "I Never Loved a Man the Way I Love You", Label: "Atlantic", CatalogNumber: "SD 8139", Format: domain.FormatLP, Price: "$140.00"},
	{Artist: "John Coltrane", ReleaseTitle: "A Love Supreme", Label: "Impulse!", CatalogNumber: "A-77", Format: domain.FormatLP, Price: "$250.00"},
	{Artist: "Thelonious Monk", ReleaseTitle: "Brilliant Corners", Label: "Riverside", CatalogNumber: "RLP 12-226", Format: domain.FormatLP, Price: "$220.00"},
	{Artist: "Herbie Hancock", ReleaseTitle: "Head Hunters", Label: "Columbia", CatalogNumber: "KC 32731", Format: domain.FormatLP, Price: "$70.00"},
	{Artist: "Lee Morgan", ReleaseTitle: "The Sidewinder", Label: "Blue Note", CatalogNumber: "BLP 4157", Format: domain.FormatLP, Price: "$200.00"},
	{Artist: "Sonny Rollins", ReleaseTitle: "Saxophone Colossus", Label: "Prestige", CatalogNumber: "PRLP 7079", Format: domain.FormatLP, Price: "$280.00"},
	{Artist: "Keith Jarrett", ReleaseTitle: "The Koln Concert", Label: "ECM", CatalogNumber: "ECM 1064/65", Format: domain.FormatLP, Price: "$100.00"},
	{Artist: "Oscar Peterson", ReleaseTitle: "Night Train", Label: "Verve", CatalogNumber: "V-8538", Format: domain.FormatLP, Price: "$90.00"},
	{Artist: "Erroll Garner", ReleaseTitle: "Concert by the Sea", Label: "Columbia", CatalogNumber: "CL 883", Format: domain.FormatLP, Price: "$70.00"},
}

var seedBuyerNames = []string{
	"John Smith", "Sarah Johnson", "Mike Brown", "Emily Davis", "Chris Wilson",
	"Alex Turner", "Jamie Lee", "Taylor Moore", "Jordan Casey", "Sam Morgan",
	"Pat Riley", "Dana White",
}
