package catalog

import (
	"github.com/alquigo/alquigo-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// seedProducts is the launch catalog. Prices are COP.
func seedProducts() []Product {
	return []Product{
		{
			ID:               "1",
			Name:             "Laptop Profesional MacBook Pro",
			Price:            decimal.NewFromInt(11500000),
			Image:            "products/macbook-pro-16.jpg",
			Description:      `MacBook Pro 16" con chip M2 Pro, 32GB RAM, 1TB SSD. Perfecto para diseño, desarrollo y tareas intensivas.`,
			Category:         "electrónicos",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Bogotá, Cundinamarca",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller1",
				Name:        "TechnoStore Colombia",
				Avatar:      "avatars/seller1.jpg",
				Rating:      4.9,
				ReviewCount: 2847,
				Verified:    true,
				MemberSince: "2018-03-15",
			},
		},
		{
			ID:               "2",
			Name:             "Audífonos Inalámbricos AirPods Pro",
			Price:            decimal.NewFromInt(1290000),
			Image:            "products/airpods-pro.jpg",
			Description:      "AirPods Pro con cancelación activa de ruido, audio espacial y hasta 30 horas de batería. Incluye estuche de carga.",
			Category:         "electrónicos",
			Condition:        enums.ProductConditionNew,
			Location:         "Medellín, Antioquia",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller2",
				Name:        "AudioExperts Colombia",
				Avatar:      "avatars/seller2.jpg",
				Rating:      4.7,
				ReviewCount: 1203,
				Verified:    true,
				MemberSince: "2019-07-22",
			},
		},
		{
			ID:               "3",
			Name:             "iPhone 15 Pro Max 256GB",
			Price:            decimal.NewFromInt(5950000),
			Image:            "products/iphone-15-pro-max.jpg",
			Description:      "iPhone 15 Pro Max con chip A17 Pro, sistema de cámara triple y Action Button. Incluye cargador y protector.",
			Category:         "electrónicos",
			Condition:        enums.ProductConditionNew,
			Location:         "Cali, Valle del Cauca",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller3",
				Name:        "iZone Premium Colombia",
				Avatar:      "avatars/seller3.jpg",
				Rating:      4.8,
				ReviewCount: 3421,
				Verified:    true,
				MemberSince: "2017-11-08",
			},
		},
		{
			ID:               "4",
			Name:             `Tablet iPad Air 10.9"`,
			Price:            decimal.NewFromInt(2890000),
			Image:            "products/ipad-air.jpg",
			Description:      `iPad Air con chip M1, pantalla Liquid Retina de 10.9" y soporte para Apple Pencil. Ideal para crear y trabajar.`,
			Category:         "electrónicos",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Cartagena, Bolívar",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller4",
				Name:        "Digital Dreams Colombia",
				Avatar:      "avatars/seller4.jpg",
				Rating:      4.6,
				ReviewCount: 987,
				Verified:    false,
				MemberSince: "2020-01-15",
			},
		},
		{
			ID:               "5",
			Name:             "Licuadora de Alta Potencia Vitamix",
			Price:            decimal.NewFromInt(1890000),
			Image:            "products/vitamix.jpg",
			Description:      "Licuadora profesional Vitamix con motor de 2.2 HP, 64oz, perfecta para smoothies, sopas calientes y más.",
			Category:         "hogar",
			Condition:        enums.ProductConditionGood,
			Location:         "Barranquilla, Atlántico",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller5",
				Name:        "CocinaTop Colombia",
				Avatar:      "avatars/seller5.jpg",
				Rating:      4.4,
				ReviewCount: 756,
				Verified:    true,
				MemberSince: "2019-05-20",
			},
		},
		{
			ID:               "6",
			Name:             "Taza de Cerámica Artesanal",
			Price:            decimal.NewFromInt(85000),
			Image:            "products/taza-ceramica.jpg",
			Description:      "Taza artesanal de cerámica hecha a mano con diseños únicos. Perfecta para café, té o chocolate caliente.",
			Category:         "hogar",
			Condition:        enums.ProductConditionNew,
			Location:         "Villa de Leyva, Boyacá",
			AvailableForRent: false,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller6",
				Name:        "Artesanías Boyacenses",
				Avatar:      "avatars/seller6.jpg",
				Rating:      4.9,
				ReviewCount: 234,
				Verified:    true,
				MemberSince: "2021-02-10",
			},
		},
		{
			ID:               "7",
			Name:             "Zapatillas Running Nike Air Max",
			Price:            decimal.NewFromInt(650000),
			Image:            "products/nike-air-max.jpg",
			Description:      "Nike Air Max 270 para running y actividades deportivas. Tecnología Air visible y máxima comodidad.",
			Category:         "ropa",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Bucaramanga, Santander",
			AvailableForRent: false,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller7",
				Name:        "SportZone Colombia",
				Avatar:      "avatars/seller7.jpg",
				Rating:      4.7,
				ReviewCount: 1456,
				Verified:    true,
				MemberSince: "2018-09-12",
			},
		},
		{
			ID:               "8",
			Name:             "Bolso de Diseñador Louis Vuitton",
			Price:            decimal.NewFromInt(8900000),
			Image:            "products/louis-vuitton-neverfull.jpg",
			Description:      "Bolso auténtico Louis Vuitton Neverfull MM en canvas monogram. Incluye dustbag y certificado de autenticidad.",
			Category:         "ropa",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Zona Rosa, Bogotá",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller8",
				Name:        "Luxury Boutique Colombia",
				Avatar:      "avatars/seller8.jpg",
				Rating:      4.9,
				ReviewCount: 789,
				Verified:    true,
				MemberSince: "2016-04-18",
			},
		},
		{
			ID:               "9",
			Name:             "Reloj Rolex Submariner",
			Price:            decimal.NewFromInt(45000000),
			Image:            "products/rolex-submariner.jpg",
			Description:      "Rolex Submariner Date acero inoxidable, resistente al agua hasta 300m. Incluye caja original y papeles.",
			Category:         "ropa",
			Condition:        enums.ProductConditionExcellent,
			Location:         "El Poblado, Medellín",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller9",
				Name:        "TimeKeepers Colombia",
				Avatar:      "avatars/seller9.jpg",
				Rating:      4.8,
				ReviewCount: 345,
				Verified:    true,
				MemberSince: "2015-08-30",
			},
		},
		{
			ID:               "10",
			Name:             "Mochila de Viaje Patagonia",
			Price:            decimal.NewFromInt(450000),
			Image:            "products/patagonia-black-hole.jpg",
			Description:      "Mochila Patagonia Black Hole 32L, resistente al agua con múltiples compartimentos para viajes y outdoor.",
			Category:         "accesorios",
			Condition:        enums.ProductConditionGood,
			Location:         "Santa Marta, Magdalena",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller10",
				Name:        "Adventure Gear Colombia",
				Avatar:      "avatars/seller10.jpg",
				Rating:      4.6,
				ReviewCount: 892,
				Verified:    true,
				MemberSince: "2019-12-05",
			},
		},
		{
			ID:               "11",
			Name:             "Cámara Canon EOS R5",
			Price:            decimal.NewFromInt(12800000),
			Image:            "products/canon-eos-r5.jpg",
			Description:      "Canon EOS R5 mirrorless con sensor de 45MP, video 8K, ideal para fotografía profesional y cinematografía.",
			Category:         "accesorios",
			Condition:        enums.ProductConditionExcellent,
			Location:         "San Andrés, Archipiélago",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller11",
				Name:        "PhotoPro Colombia",
				Avatar:      "avatars/seller11.jpg",
				Rating:      4.9,
				ReviewCount: 567,
				Verified:    true,
				MemberSince: "2017-06-14",
			},
		},
		{
			ID:               "12",
			Name:             "Bicicleta de Montaña Trek",
			Price:            decimal.NewFromInt(3200000),
			Image:            "products/trek-x-caliber.jpg",
			Description:      "Trek X-Caliber 8 con cuadro de aluminio, suspensión RockShox y cambios Shimano. Lista para cualquier sendero.",
			Category:         "deportes",
			Condition:        enums.ProductConditionGood,
			Location:         "Manizales, Caldas",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller12",
				Name:        "CycleColombia",
				Avatar:      "avatars/seller12.jpg",
				Rating:      4.7,
				ReviewCount: 1234,
				Verified:    true,
				MemberSince: "2018-11-22",
			},
		},
		{
			ID:               "13",
			Name:             "Set de Pesas Ajustables",
			Price:            decimal.NewFromInt(1250000),
			Image:            "products/pesas-ajustables.jpg",
			Description:      "Set de mancuernas ajustables de 5-25kg cada una. Perfecto para entrenamientos en casa y espacios pequeños.",
			Category:         "deportes",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Pereira, Risaralda",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller13",
				Name:        "FitnessPro Colombia",
				Avatar:      "avatars/seller13.jpg",
				Rating:      4.5,
				ReviewCount: 678,
				Verified:    true,
				MemberSince: "2020-03-08",
			},
		},
		{
			ID:               "14",
			Name:             "Taladro Inalámbrico DeWalt",
			Price:            decimal.NewFromInt(890000),
			Image:            "products/dewalt-20v.jpg",
			Description:      "Taladro DeWalt 20V MAX con batería de litio, incluye maletín y set de brocas. Ideal para construcción y hogar.",
			Category:         "herramientas",
			Condition:        enums.ProductConditionGood,
			Location:         "Ibagué, Tolima",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller14",
				Name:        "ToolMaster Colombia",
				Avatar:      "avatars/seller14.jpg",
				Rating:      4.6,
				ReviewCount: 543,
				Verified:    true,
				MemberSince: "2019-01-16",
			},
		},
		{
			ID:               "15",
			Name:             "Guitarra Acústica Taylor",
			Price:            decimal.NewFromInt(4200000),
			Image:            "products/taylor-214ce.jpg",
			Description:      "Guitarra acústica Taylor 214ce con electrificación, tapa de Sitka Spruce y fondo de Rosewood laminado.",
			Category:         "música",
			Condition:        enums.ProductConditionExcellent,
			Location:         "Armenia, Quindío",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller15",
				Name:        "MusicStore Colombia",
				Avatar:      "avatars/seller15.jpg",
				Rating:      4.8,
				ReviewCount: 432,
				Verified:    true,
				MemberSince: "2017-09-25",
			},
		},
		{
			ID:               "16",
			Name:             "Silla Gamer RGB Profesional",
			Price:            decimal.NewFromInt(1680000),
			Image:            "products/silla-gamer-rgb.jpg",
			Description:      "Silla gamer ergonómica con iluminación RGB, reclinación 180°, cojines de memoria y reposabrazos ajustables.",
			Category:         "muebles",
			Condition:        enums.ProductConditionNew,
			Location:         "Chapinero, Bogotá",
			AvailableForRent: true,
			AvailableForSale: true,
			Seller: Seller{
				ID:          "seller16",
				Name:        "GamersCorner Colombia",
				Avatar:      "avatars/seller16.jpg",
				Rating:      4.7,
				ReviewCount: 1891,
				Verified:    true,
				MemberSince: "2018-12-03",
			},
		},
	}
}
