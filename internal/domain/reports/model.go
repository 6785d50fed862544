package reports

// Section es una sección titulada del reporte. Se usa slice (no map) para que
// el orden del documento sea exactamente el orden de inserción del caller.
type Section struct {
	Title string
	Body  string
}

// Filename es el nombre fijo del adjunto descargable.
const Filename = "pet_care_report.pdf"

// Disclaimer aparece verbatim al final de todo reporte generado.
const Disclaimer = "DISCLAIMER: This report was generated using artificial intelligence. " +
	"While the recommendations are based on veterinary knowledge, they should not replace " +
	"professional veterinary advice. Always consult with a qualified veterinarian for your " +
	"pet's specific needs."
