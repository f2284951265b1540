package manifest

// displayNames maps values.yaml keys to the names used in release notes.
var displayNames = map[string]string{
	"brpmock":                  "BRP Personen Mock",
	"clamav":                   "ClamAV",
	"infinispan":               "Infinispan",
	"keycloak":                 "Keycloak",
	"keycloak.operator":        "Keycloak Operator",
	"kiss":                     "KISS",
	"kiss.adapter":             "KISS Adapter",
	"kiss.elastic":             "KISS Elastic",
	"kiss.frontend":            "KISS Frontend",
	"kiss.sync":                "KISS Sync",
	"monitoring.grafana":       "Grafana",
	"monitoring.loki":          "Loki",
	"monitoring.prometheus":    "Prometheus",
	"objecten":                 "Objecten",
	"objecttypen":              "Objecttypen",
	"openarchiefbeheer":        "Open Archiefbeheer",
	"openbeheer":               "Open Beheer",
	"openformulieren":          "Open Formulieren",
	"openinwoner":              "Open Inwoner",
	"openklant":                "Open Klant",
	"opennotificaties":         "Open Notificaties",
	"openzaak":                 "Open Zaak",
	"pabc":                     "PABC",
	"zac":                      "ZAC",
	"zac.office_converter":     "ZAC Office Converter",
	"zac.solr":                 "ZAC Solr",
	"zgw-office-addin":         "ZGW Office Add-in",
	"zgw-office-addin.backend": "ZGW Office Add-in Backend",
}

// DisplayName returns the human-readable name for a values.yaml key path
// such as "openzaak" or "kiss.frontend". Unknown keys are returned as-is.
func DisplayName(raw string) string {
	if name, ok := displayNames[raw]; ok {
		return name
	}
	return raw
}
