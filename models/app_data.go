package models

// AppData is the whole persisted aggregate. It is serialized as a single
// blob and always written in full.
type AppData struct {
	MenuItems     []MenuItem     `json:"menuItems"`
	Orders        []Order        `json:"orders"`
	GalleryImages []GalleryImage `json:"galleryImages"`
	SiteContent   SiteContent    `json:"siteContent"`
	SocialLinks   []SocialLink   `json:"socialLinks"`
	Users         []User         `json:"users"`
}

// DefaultAppData returns the seed aggregate used on first run and as the
// base for merge-on-load. Orders are transactional and start empty.
func DefaultAppData() AppData {
	return AppData{
		MenuItems: []MenuItem{
			{
				ID:          "1",
				Name:        LocalizedText{En: "Seared Scallops", Ar: "اسكالوب محمر"},
				Description: LocalizedText{En: "With saffron risotto and a citrus glaze.", Ar: "مع ريزوتو بالزعفران وصلصة حمضيات."},
				Price:       Price{USD: 28, JOD: 19.80},
				Category:    CategoryAppetizers,
				Image:       "https://picsum.photos/id/1060/400/300",
			},
			{
				ID:          "2",
				Name:        LocalizedText{En: "Burrata Caprese", Ar: "بوراتا كابريزي"},
				Description: LocalizedText{En: "Heirloom tomatoes, fresh burrata, basil, and balsamic reduction.", Ar: "طماطم كرزية، جبنة بوراتا طازجة، ريحان، وخل بلسميك."},
				Price:       Price{USD: 22, JOD: 15.60},
				Category:    CategoryAppetizers,
				Image:       "https://picsum.photos/id/1080/400/300",
			},
			{
				ID:          "3",
				Name:        LocalizedText{En: "Wagyu Beef Filet", Ar: "فيليه لحم الواغيو"},
				Description: LocalizedText{En: "8oz filet, truffle mashed potatoes, grilled asparagus.", Ar: "فيليه 8 أونصات، بطاطا مهروسة بالكمأة، هليون مشوي."},
				Price:       Price{USD: 75, JOD: 53.25},
				Category:    CategoryMainCourses,
				Image:       "https://picsum.photos/id/699/400/300",
			},
			{
				ID:          "4",
				Name:        LocalizedText{En: "Pan-Seared Salmon", Ar: "سلمون مشوي"},
				Description: LocalizedText{En: "Crispy skin salmon with a lemon-dill sauce and quinoa salad.", Ar: "سلمون مقرمش مع صلصة الليمون والشبت وسلطة الكينوا."},
				Price:       Price{USD: 45, JOD: 31.95},
				Category:    CategoryMainCourses,
				Image:       "https://picsum.photos/id/324/400/300",
			},
			{
				ID:          "5",
				Name:        LocalizedText{En: "Chocolate Lava Cake", Ar: "كيكة الحمم البركانية بالشوكولاتة"},
				Description: LocalizedText{En: "Molten chocolate center served with vanilla bean ice cream.", Ar: "قلب شوكولاتة سائل يقدم مع آيس كريم الفانيليا."},
				Price:       Price{USD: 18, JOD: 12.78},
				Category:    CategoryDesserts,
				Image:       "https://picsum.photos/id/202/400/300",
			},
			{
				ID:          "6",
				Name:        LocalizedText{En: "Deconstructed Tiramisu", Ar: "تيراميسو مفكك"},
				Description: LocalizedText{En: "Espresso-soaked ladyfingers, mascarpone cream, cocoa powder.", Ar: "أصابع الست المشبعة بالإسبريسو، كريمة الماسكاربوني، مسحوق الكاكاو."},
				Price:       Price{USD: 16, JOD: 11.36},
				Category:    CategoryDesserts,
				Image:       "https://picsum.photos/id/431/400/300",
			},
			{
				ID:          "7",
				Name:        LocalizedText{En: "Golden Hour Elixir", Ar: "إكسير الساعة الذهبية"},
				Description: LocalizedText{En: "A sophisticated blend of elderflower, gin, and sparkling wine.", Ar: "مزيج راقٍ من زهرة البيلسان والجين والنبيذ الفوار."},
				Price:       Price{USD: 20, JOD: 14.20},
				Category:    CategoryDrinks,
				Image:       "https://picsum.photos/id/102/400/300",
			},
		},
		Orders: []Order{},
		GalleryImages: []GalleryImage{
			{ID: "g1", Src: "https://picsum.photos/id/292/800/600", Alt: LocalizedText{En: "A beautifully plated dish", Ar: "طبق مزين بشكل جميل"}},
			{ID: "g2", Src: "https://picsum.photos/id/312/800/600", Alt: LocalizedText{En: "Elegant restaurant interior", Ar: "ديكور المطعم الأنيق"}},
			{ID: "g3", Src: "https://picsum.photos/id/433/800/600", Alt: LocalizedText{En: "A vibrant cocktail", Ar: "كوكتيل زاهي الألوان"}},
			{ID: "g4", Src: "https://picsum.photos/id/988/800/600", Alt: LocalizedText{En: "Chef preparing a meal", Ar: "الشيف يحضر وجبة"}},
			{ID: "g5", Src: "https://picsum.photos/id/1025/800/600", Alt: LocalizedText{En: "Cozy dining area", Ar: "منطقة طعام مريحة"}},
			{ID: "g6", Src: "https://picsum.photos/id/1060/800/600", Alt: LocalizedText{En: "Fresh ingredients on display", Ar: "مكونات طازجة معروضة"}},
		},
		SiteContent: SiteContent{
			LogoURL:            "https://i.ibb.co/Swvdgyjz/11.png",
			HeroImage:          "https://i.ibb.co/bggjhdTk/image.png",
			FeaturedDishIDs:    []string{"1", "3", "4"},
			FeaturedDessertIDs: []string{"5", "6", ""},
			Address:            LocalizedText{En: "123 Luxury Lane, Metropolis, 10101", Ar: "123 شارع الفخامة، متروبوليس، 10101"},
			Phone:              "0788078118",
			Email:              "contact@astren.info",
			MapURL:             "https://maps.google.com/?q=astren",
			NotificationSettings: NotificationSettings{
				Enabled:          true,
				Text:             LocalizedText{En: "We are now available on Talabat!", Ar: "نحن متواجدون الآن على طلبات!"},
				ImageURL:         "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a2/Talabat_logo.svg/2560px-Talabat_logo.svg.png",
				BackgroundColor:  "#EA580C",
				FrequencyMinutes: 0,
			},
		},
		SocialLinks: []SocialLink{
			{ID: "s1", Name: "Instagram", URL: "https://www.instagram.com/astrenrest/"},
			{ID: "s3", Name: "Facebook", URL: "https://web.facebook.com/Astrenrest"},
		},
		Users: []User{
			{ID: 1, Phone: "1234567890", Password: "password123", LoyaltyPoints: 150},
		},
	}
}
