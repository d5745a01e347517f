package settings

// Settings is the presentation-facing configuration document. The core
// reads it (company header on rendered invoices) but never mutates it;
// Save exists for the settings page.
type Settings struct {
	Version     string            `json:"version"`
	Company     CompanyProfile    `json:"company"`
	Invoice     InvoiceSettings   `json:"invoice"`
	Application AppSettings       `json:"application"`
	Shortcuts   map[string]string `json:"shortcuts"`
	Navigation  map[string]string `json:"navigation_shortcuts"`
}

type CompanyProfile struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	GSTNumber string `json:"gst_number"`
	LogoPath  string `json:"logo_path"`
}

type InvoiceSettings struct {
	Template string `json:"template"`
	Prefix   string `json:"prefix"`
}

type AppSettings struct {
	Theme string `json:"theme"`
}

// Default returns the settings document seeded on first run
func Default() *Settings {
	return &Settings{
		Version: "1.0.0",
		Company: CompanyProfile{
			Name:    "AVBilling Solutions",
			Address: "123 Main Street, Anytown, India",
		},
		Invoice: InvoiceSettings{
			Template: "Detailed",
			Prefix:   "INV-",
		},
		Application: AppSettings{
			Theme: "Light",
		},
		Shortcuts: map[string]string{
			"new_invoice":   "Ctrl+N",
			"save_invoice":  "Ctrl+S",
			"print_invoice": "Ctrl+P",
		},
		Navigation: map[string]string{
			"F1": "F1", "F2": "F2", "F3": "F3", "F4": "F4",
			"F5": "F5", "F6": "F6", "F7": "F7", "F8": "F8",
		},
	}
}
