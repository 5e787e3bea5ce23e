package catalog

// demoProducts is the dataset served when no backend URL is configured, so the
// storefront can be developed and demoed standalone. Image fields deliberately
// mix absolute paths, bare filenames, and blanks to exercise every resolver
// branch.
func demoProducts() []Product {
	return []Product{
		{
			ID:           "demo-aspirina-500",
			Name:         "Aspirina 500mg",
			Brand:        "Bayer",
			Price:        8500,
			Presentation: "Caja x 20 tabletas",
			Category:     "Medicamentos",
			Description:  "Analgésico y antipirético de uso general.\n\n**No exceder** la dosis indicada.",
			Image:        "aspirina500.jpg",
		},
		{
			ID:           "demo-ibuprofeno-400",
			Name:         "Ibuprofeno 400mg",
			Brand:        "MK",
			Price:        6200,
			Presentation: "Caja x 30 tabletas",
			Category:     "Medicamentos",
			Description:  "Antiinflamatorio no esteroideo para dolor leve a moderado.",
			Image:        "/images/ibuprofeno400.jpg",
		},
		{
			ID:           "demo-acetaminofen-jarabe",
			Name:         "Acetaminofén jarabe pediátrico",
			Price:        9800,
			Presentation: "Frasco 120ml",
			Category:     "Medicamentos",
			Image:        "",
		},
		{
			ID:           "demo-vitamina-c",
			Name:         "Vitamina C efervescente",
			Brand:        "Redoxon",
			Price:        15400,
			Presentation: "Tubo x 10 tabletas",
			Category:     "Vitaminas",
			Description:  "Refuerzo diario de vitamina C con zinc.",
			Image:        "vitaminac.jpg",
		},
		{
			ID:           "demo-alcohol-antiseptico",
			Name:         "Alcohol antiséptico 700ml",
			Price:        7200,
			Category:     "Primeros Auxilios",
			Image:        "default.jpg",
		},
		{
			ID:           "demo-termometro-digital",
			Name:         "Termómetro digital",
			Brand:        "Omron",
			Price:        32000,
			Category:     "Equipo Médico",
			Description:  "Lectura en 60 segundos, punta flexible.",
			Image:        "https://cdn.lfarma.app/productos/termometro.jpg",
		},
		{
			ID:           "demo-crema-hidratante",
			Name:         "Crema hidratante corporal",
			Brand:        "Eucerin",
			Price:        28900,
			Presentation: "Tubo 250ml",
			Category:     "Cuidado Personal",
			Image:        "cremahidratante.jpg",
		},
		{
			ID:           "demo-panales-etapa2",
			Name:         "Pañales etapa 2 x 40",
			Brand:        "Winny",
			Price:        41500,
			Category:     "Maternidad & Bebé",
			Image:        "",
		},
		{
			ID:           "demo-suero-oral",
			Name:         "Suero oral sabor natural",
			Price:        5600,
			Presentation: "Bolsa 500ml",
			Category:     "Primeros Auxilios",
			Image:        "sueroral.jpg",
		},
	}
}
