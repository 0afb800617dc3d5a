package theme

// Catalog is the full theme table. Order is part of the public contract:
// the first entry is the fallback for missing or unknown ids, so new
// themes are appended, never inserted at the front.
var Catalog = []Theme{
	{
		ID:   "classic-warm",
		Name: "Classic Warm",
		Palette: Palette{
			Primary: "#C0392B", Secondary: "#E67E22", Accent: "#F1C40F",
			Background: "#FDF6EC", Surface: "#FFFFFF", Text: "#2C1810", TextMuted: "#8D6E63",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #C0392B, #E67E22)", Card: "linear-gradient(180deg, #FFFFFF, #FDF6EC)"},
		Fonts:     Fonts{Heading: "Playfair Display", Body: "Lato"},
		Effects:   Effects{Shadow: "0 4px 14px rgba(192,57,43,0.18)", Blur: "8px", Rounding: "12px"},
	},
	{
		ID:   "midnight-gold",
		Name: "Midnight Gold",
		Palette: Palette{
			Primary: "#D4AF37", Secondary: "#1C1C1E", Accent: "#F5E6B8",
			Background: "#0F0F10", Surface: "#1C1C1E", Text: "#F7F3E8", TextMuted: "#A89F85",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #0F0F10, #2A2417)", Card: "linear-gradient(180deg, #1C1C1E, #141414)"},
		Fonts:     Fonts{Heading: "Cormorant Garamond", Body: "Inter"},
		Effects:   Effects{Shadow: "0 6px 20px rgba(0,0,0,0.55)", Blur: "12px", Rounding: "16px"},
	},
	{
		ID:   "ocean-breeze",
		Name: "Ocean Breeze",
		Palette: Palette{
			Primary: "#0E7490", Secondary: "#06B6D4", Accent: "#67E8F9",
			Background: "#F0FDFF", Surface: "#FFFFFF", Text: "#164E63", TextMuted: "#5E8C9B",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #0E7490, #06B6D4)", Card: "linear-gradient(180deg, #FFFFFF, #ECFEFF)"},
		Fonts:     Fonts{Heading: "Poppins", Body: "Open Sans"},
		Effects:   Effects{Shadow: "0 4px 12px rgba(14,116,144,0.16)", Blur: "8px", Rounding: "14px"},
	},
	{
		ID:   "forest-table",
		Name: "Forest Table",
		Palette: Palette{
			Primary: "#166534", Secondary: "#4D7C0F", Accent: "#A3E635",
			Background: "#F7FDF4", Surface: "#FFFFFF", Text: "#14281D", TextMuted: "#6B8F71",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #166534, #4D7C0F)", Card: "linear-gradient(180deg, #FFFFFF, #F0FDF4)"},
		Fonts:     Fonts{Heading: "Merriweather", Body: "Source Sans Pro"},
		Effects:   Effects{Shadow: "0 4px 12px rgba(22,101,52,0.15)", Blur: "6px", Rounding: "10px"},
	},
	{
		ID:   "sunset-glow",
		Name: "Sunset Glow",
		Palette: Palette{
			Primary: "#DB2777", Secondary: "#F97316", Accent: "#FBBF24",
			Background: "#FFF7F5", Surface: "#FFFFFF", Text: "#4C0519", TextMuted: "#9F6B7A",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #DB2777, #F97316)", Card: "linear-gradient(180deg, #FFFFFF, #FFF1F2)"},
		Fonts:     Fonts{Heading: "Raleway", Body: "Nunito"},
		Effects:   Effects{Shadow: "0 5px 16px rgba(219,39,119,0.18)", Blur: "10px", Rounding: "18px"},
	},
	{
		ID:   "minimal-slate",
		Name: "Minimal Slate",
		Palette: Palette{
			Primary: "#334155", Secondary: "#64748B", Accent: "#38BDF8",
			Background: "#F8FAFC", Surface: "#FFFFFF", Text: "#0F172A", TextMuted: "#7C8DA3",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #334155, #64748B)", Card: "linear-gradient(180deg, #FFFFFF, #F1F5F9)"},
		Fonts:     Fonts{Heading: "Inter", Body: "Inter"},
		Effects:   Effects{Shadow: "0 2px 8px rgba(15,23,42,0.08)", Blur: "4px", Rounding: "8px"},
	},
	{
		ID:   "terracotta",
		Name: "Terracotta",
		Palette: Palette{
			Primary: "#9A3412", Secondary: "#C2410C", Accent: "#FDBA74",
			Background: "#FFF7ED", Surface: "#FFFBF5", Text: "#431407", TextMuted: "#9C7A64",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #9A3412, #C2410C)", Card: "linear-gradient(180deg, #FFFBF5, #FFEDD5)"},
		Fonts:     Fonts{Heading: "Libre Baskerville", Body: "PT Sans"},
		Effects:   Effects{Shadow: "0 4px 14px rgba(154,52,18,0.16)", Blur: "8px", Rounding: "12px"},
	},
	{
		ID:   "royal-plum",
		Name: "Royal Plum",
		Palette: Palette{
			Primary: "#6D28D9", Secondary: "#9333EA", Accent: "#E9D5FF",
			Background: "#FAF5FF", Surface: "#FFFFFF", Text: "#2E1065", TextMuted: "#8B7AA8",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #6D28D9, #9333EA)", Card: "linear-gradient(180deg, #FFFFFF, #F3E8FF)"},
		Fonts:     Fonts{Heading: "DM Serif Display", Body: "DM Sans"},
		Effects:   Effects{Shadow: "0 5px 18px rgba(109,40,217,0.18)", Blur: "10px", Rounding: "16px"},
	},
	{
		ID:   "coastal-white",
		Name: "Coastal White",
		Palette: Palette{
			Primary: "#0369A1", Secondary: "#7DD3FC", Accent: "#FCD34D",
			Background: "#FFFFFF", Surface: "#F8FBFF", Text: "#082F49", TextMuted: "#64748B",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #E0F2FE, #BAE6FD)", Card: "linear-gradient(180deg, #FFFFFF, #F0F9FF)"},
		Fonts:     Fonts{Heading: "Josefin Sans", Body: "Karla"},
		Effects:   Effects{Shadow: "0 3px 10px rgba(3,105,161,0.10)", Blur: "6px", Rounding: "10px"},
	},
	{
		ID:   "smokehouse",
		Name: "Smokehouse",
		Palette: Palette{
			Primary: "#78350F", Secondary: "#B45309", Accent: "#FBBF24",
			Background: "#1C1917", Surface: "#292524", Text: "#FAFAF9", TextMuted: "#A8A29E",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #1C1917, #44403C)", Card: "linear-gradient(180deg, #292524, #1C1917)"},
		Fonts:     Fonts{Heading: "Oswald", Body: "Roboto"},
		Effects:   Effects{Shadow: "0 6px 18px rgba(0,0,0,0.5)", Blur: "10px", Rounding: "8px"},
	},
	{
		ID:   "sakura",
		Name: "Sakura",
		Palette: Palette{
			Primary: "#BE185D", Secondary: "#F9A8D4", Accent: "#FDF2F8",
			Background: "#FFF5F7", Surface: "#FFFFFF", Text: "#500724", TextMuted: "#A77C8D",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #F9A8D4, #FBCFE8)", Card: "linear-gradient(180deg, #FFFFFF, #FDF2F8)"},
		Fonts:     Fonts{Heading: "Noto Serif JP", Body: "Noto Sans JP"},
		Effects:   Effects{Shadow: "0 4px 12px rgba(190,24,93,0.12)", Blur: "8px", Rounding: "20px"},
	},
	{
		ID:   "espresso",
		Name: "Espresso",
		Palette: Palette{
			Primary: "#44281D", Secondary: "#6F4E37", Accent: "#D7B899",
			Background: "#F5EFE6", Surface: "#FFFDF9", Text: "#2B1A12", TextMuted: "#8A6F5C",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #44281D, #6F4E37)", Card: "linear-gradient(180deg, #FFFDF9, #F5EFE6)"},
		Fonts:     Fonts{Heading: "Crimson Text", Body: "Work Sans"},
		Effects:   Effects{Shadow: "0 4px 14px rgba(68,40,29,0.18)", Blur: "8px", Rounding: "12px"},
	},
	{
		ID:   "neon-diner",
		Name: "Neon Diner",
		Palette: Palette{
			Primary: "#EC4899", Secondary: "#8B5CF6", Accent: "#22D3EE",
			Background: "#09090B", Surface: "#18181B", Text: "#FAFAFA", TextMuted: "#A1A1AA",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #EC4899, #8B5CF6)", Card: "linear-gradient(180deg, #18181B, #09090B)"},
		Fonts:     Fonts{Heading: "Orbitron", Body: "Space Grotesk"},
		Effects:   Effects{Shadow: "0 0 24px rgba(236,72,153,0.35)", Blur: "14px", Rounding: "14px"},
	},
	{
		ID:   "olive-grove",
		Name: "Olive Grove",
		Palette: Palette{
			Primary: "#3F6212", Secondary: "#84CC16", Accent: "#ECFCCB",
			Background: "#FEFCE8", Surface: "#FFFFFF", Text: "#1A2E05", TextMuted: "#7D8F69",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #3F6212, #84CC16)", Card: "linear-gradient(180deg, #FFFFFF, #F7FEE7)"},
		Fonts:     Fonts{Heading: "Lora", Body: "Mulish"},
		Effects:   Effects{Shadow: "0 4px 10px rgba(63,98,18,0.14)", Blur: "6px", Rounding: "10px"},
	},
	{
		ID:   "ruby-velvet",
		Name: "Ruby Velvet",
		Palette: Palette{
			Primary: "#9F1239", Secondary: "#E11D48", Accent: "#FECDD3",
			Background: "#1F0A10", Surface: "#2D1118", Text: "#FFF1F2", TextMuted: "#C49BA5",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #4C0519, #9F1239)", Card: "linear-gradient(180deg, #2D1118, #1F0A10)"},
		Fonts:     Fonts{Heading: "Italiana", Body: "Montserrat"},
		Effects:   Effects{Shadow: "0 6px 20px rgba(159,18,57,0.35)", Blur: "12px", Rounding: "16px"},
	},
	{
		ID:   "street-food",
		Name: "Street Food",
		Palette: Palette{
			Primary: "#EA580C", Secondary: "#FACC15", Accent: "#16A34A",
			Background: "#FFFBEB", Surface: "#FFFFFF", Text: "#3B2F0B", TextMuted: "#92834E",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #EA580C, #FACC15)", Card: "linear-gradient(180deg, #FFFFFF, #FEF9C3)"},
		Fonts:     Fonts{Heading: "Bebas Neue", Body: "Rubik"},
		Effects:   Effects{Shadow: "0 4px 12px rgba(234,88,12,0.2)", Blur: "6px", Rounding: "10px"},
	},
	{
		ID:   "nordic-frost",
		Name: "Nordic Frost",
		Palette: Palette{
			Primary: "#1E40AF", Secondary: "#93C5FD", Accent: "#DBEAFE",
			Background: "#F8FAFF", Surface: "#FFFFFF", Text: "#1E3A8A", TextMuted: "#7A8BB0",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #DBEAFE, #93C5FD)", Card: "linear-gradient(180deg, #FFFFFF, #EFF6FF)"},
		Fonts:     Fonts{Heading: "Manrope", Body: "Figtree"},
		Effects:   Effects{Shadow: "0 2px 8px rgba(30,64,175,0.08)", Blur: "4px", Rounding: "8px"},
	},
	{
		ID:   "golden-hour",
		Name: "Golden Hour",
		Palette: Palette{
			Primary: "#B45309", Secondary: "#F59E0B", Accent: "#FDE68A",
			Background: "#FFFBEB", Surface: "#FFFEF7", Text: "#451A03", TextMuted: "#A18160",
		},
		Gradients: Gradients{Hero: "linear-gradient(135deg, #B45309, #F59E0B)", Card: "linear-gradient(180deg, #FFFEF7, #FEF3C7)"},
		Fonts:     Fonts{Heading: "Fraunces", Body: "Sora"},
		Effects:   Effects{Shadow: "0 5px 16px rgba(180,83,9,0.16)", Blur: "8px", Rounding: "14px"},
	},
}
