package catalog

import "salamatlab/internal/domain/entities"

func checkupCategories() []entities.PackageCategory {
	return []entities.PackageCategory{
		{
			Key:   entities.CategoryGeneral,
			Title: "چکاپ عمومی",
			Packages: []entities.Package{
				{
					ID:          "general_pre_puberty",
					Title:       "چکاپ عمومی - قبل از بلوغ",
					Subtitle:    "ویژه کودکان",
					Price:       "۶۵۰,۰۰۰",
					Description: "بررسی رشد، کم‌خونی و وضعیت تغذیه کودکان",
					Features: []string{
						"شمارش کامل سلول‌های خون (CBC)",
						"آزمایش کامل ادرار",
						"آهن و فریتین",
						"ویتامین D",
					},
				},
				{
					ID:          "general_post_puberty",
					Title:       "چکاپ عمومی - بعد از بلوغ",
					Subtitle:    "ویژه بزرگسالان",
					Price:       "۸۵۰,۰۰۰",
					Description: "پایش دوره‌ای قند، چربی، کبد و کلیه",
					Features: []string{
						"شمارش کامل سلول‌های خون (CBC)",
						"قند ناشتا",
						"پروفایل چربی",
						"آنزیم‌های کبدی",
						"اوره و کراتینین",
						"آزمایش کامل ادرار",
					},
					Popular: true,
				},
				{
					ID:          "general_elderly",
					Title:       "چکاپ عمومی - سالمندان",
					Subtitle:    "بالای ۶۰ سال",
					Price:       "۱,۲۵۰,۰۰۰",
					Description: "ارزیابی جامع سلامت در سنین بالا",
					Features: []string{
						"شمارش کامل سلول‌های خون (CBC)",
						"هموگلوبین A1C",
						"پروفایل چربی",
						"عملکرد تیروئید",
						"ویتامین B12 و D",
						"عملکرد کلیه",
					},
				},
			},
		},
		{
			Key:   entities.CategorySpecialized,
			Title: "چکاپ تخصصی",
			Packages: []entities.Package{
				{
					ID:          "specialized_heart",
					Title:       "چکاپ قلب و عروق",
					Price:       "۱,۴۰۰,۰۰۰",
					Description: "ارزیابی ریسک بیماری‌های قلبی",
					Features: []string{
						"پروفایل کامل چربی",
						"CRP با حساسیت بالا",
						"هموسیستئین",
						"قند ناشتا",
					},
					Popular: true,
				},
				{
					ID:          "specialized_thyroid",
					Title:       "چکاپ تیروئید",
					Price:       "۹۵۰,۰۰۰",
					Description: "بررسی کامل عملکرد غده تیروئید",
					Features: []string{
						"TSH",
						"T3 و T4 آزاد",
						"آنتی‌بادی Anti-TPO",
					},
				},
				{
					ID:          "specialized_diabetes",
					Title:       "چکاپ دیابت",
					Price:       "۷۸۰,۰۰۰",
					Description: "پایش قند خون و عوارض کلیوی دیابت",
					Features: []string{
						"قند ناشتا",
						"هموگلوبین A1C",
						"میکروآلبومین ادرار",
						"کراتینین",
					},
				},
			},
		},
		{
			Key:   entities.CategoryWomen,
			Title: "چکاپ بانوان",
			Packages: []entities.Package{
				{
					ID:          "women_general",
					Title:       "چکاپ عمومی بانوان",
					Price:       "۱,۱۰۰,۰۰۰",
					Description: "بررسی کم‌خونی، تیروئید و ویتامین‌ها",
					Features: []string{
						"شمارش کامل سلول‌های خون (CBC)",
						"آهن و فریتین",
						"TSH",
						"ویتامین D",
					},
					Popular: true,
				},
				{
					ID:          "women_hormonal",
					Title:       "چکاپ هورمونی بانوان",
					Price:       "۱,۶۵۰,۰۰۰",
					Description: "ارزیابی هورمون‌های جنسی و باروری",
					Features: []string{
						"FSH و LH",
						"پرولاکتین",
						"استرادیول",
						"AMH",
					},
				},
				{
					ID:          "women_pregnancy",
					Title:       "چکاپ پیش از بارداری",
					Price:       "۱,۹۰۰,۰۰۰",
					Description: "آزمایش‌های لازم پیش از اقدام به بارداری",
					Features: []string{
						"گروه خونی و Rh",
						"ایمنی سرخجه",
						"توکسوپلاسما",
						"قند ناشتا",
						"TSH",
					},
				},
			},
		},
		{
			Key:   entities.CategoryCancer,
			Title: "غربالگری سرطان",
			Packages: []entities.Package{
				{
					ID:          "cancer_men",
					Title:       "غربالگری سرطان آقایان",
					Price:       "۱,۳۵۰,۰۰۰",
					Description: "تومور مارکرهای رایج در آقایان",
					Features: []string{
						"PSA کل و آزاد",
						"CEA",
						"خون مخفی در مدفوع",
					},
				},
				{
					ID:          "cancer_women",
					Title:       "غربالگری سرطان بانوان",
					Price:       "۱,۵۵۰,۰۰۰",
					Description: "تومور مارکرهای رایج در بانوان",
					Features: []string{
						"CA-125",
						"CA 15-3",
						"CEA",
						"خون مخفی در مدفوع",
					},
					Popular: true,
				},
			},
		},
	}
}

func samplingPackages() []entities.Package {
	return []entities.Package{
		{
			Title:       "نمونه‌گیری در منزل - پایه",
			Price:       "۲۵۰,۰۰۰",
			Description: "اعزام نمونه‌گیر برای آزمایش‌های روتین",
			Features: []string{
				"اعزام نمونه‌گیر در ساعت انتخابی",
				"ارسال نتیجه به صورت آنلاین",
			},
		},
		{
			Title:       "نمونه‌گیری در منزل - نسخه پزشک",
			Subtitle:    "بر اساس نسخه",
			Price:       "۳۵۰,۰۰۰",
			Description: "نمونه‌گیری بر اساس نسخه الکترونیک یا کاغذی",
			Features: []string{
				"ثبت نسخه الکترونیک",
				"محاسبه سهم بیمه",
				"ارسال نتیجه به صورت آنلاین",
			},
			Popular: true,
		},
		{
			Title:       "نمونه‌گیری در منزل - سالمندان",
			Price:       "۳۰۰,۰۰۰",
			Description: "نمونه‌گیری با رعایت شرایط ویژه سالمندان",
			Features: []string{
				"نمونه‌گیر مجرب",
				"پیگیری تلفنی نتیجه",
			},
		},
		{
			Title:       "نمونه‌گیری در محل کار",
			Price:       "۴۵۰,۰۰۰",
			Description: "نمونه‌گیری گروهی در محل کار",
			Features: []string{
				"هماهنگی با واحد منابع انسانی",
				"گزارش تجمیعی نتایج",
			},
		},
	}
}
