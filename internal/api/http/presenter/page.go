package presenter

import (
	"embed"
	"github.com/gofiber/fiber/v2"
	"github.com/iamvkosarev/expert-chat/internal/model"
	"github.com/iamvkosarev/expert-chat/pkg/local"
	"html/template"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type personaOption struct {
	Label   string
	Checked bool
}

type pageData struct {
	Lang            local.Language
	PageTitle       string
	Title           string
	Overview        string
	Usage           []string
	PersonaQuestion string
	Personas        []personaOption
	QueryLabel      string
	Placeholder     string
	Query           string
	Submit          string
	Busy            string
	Warning         string
	AnswerHeading   string
	HasAnswer       bool
	Answer          string
	Error           string
}

func newPageData(lang local.Language, selected model.Persona, query string) pageData {
	personas := model.Personas()
	options := make([]personaOption, 0, len(personas))
	for _, persona := range personas {
		options = append(options, personaOption{Label: string(persona), Checked: persona == selected})
	}
	usage := make([]string, 0, len(TextUsage))
	for _, step := range TextUsage {
		usage = append(usage, step.Text(lang))
	}
	return pageData{
		Lang:            lang,
		PageTitle:       TextPageTitle.Text(lang),
		Title:           TextTitle.Text(lang),
		Overview:        TextOverview.Text(lang),
		Usage:           usage,
		PersonaQuestion: TextPersonaQuestion.Text(lang),
		Personas:        options,
		QueryLabel:      TextQueryLabel.Text(lang),
		Placeholder:     TextQueryPlaceholder.Text(lang),
		Query:           query,
		Submit:          TextSubmit.Text(lang),
		Busy:            TextBusy.Text(lang),
		AnswerHeading:   TextAnswerHeading.Text(lang),
	}
}

// Page renders the empty form.
func Page(c *fiber.Ctx, lang local.Language) error {
	return render(c, newPageData(lang, model.Personas()[0], ""))
}

// ConsultationPage renders the form together with the outcome of a submission.
// A persona outside the known set leaves every radio unchecked.
func ConsultationPage(c *fiber.Ctx, lang local.Language, consultation model.Consultation) error {
	data := newPageData(lang, consultation.Persona, consultation.Query)
	switch consultation.Outcome {
	case model.OutcomeAnswer:
		data.HasAnswer = true
		data.Answer = consultation.Answer
	case model.OutcomeError:
		data.Error = TextErrorFormat.Format(lang, consultation.Error)
	default:
		data.Warning = TextEmptyWarning.Text(lang)
	}
	return render(c, data)
}

func render(c *fiber.Ctx, data pageData) error {
	c.Type("html", "utf-8")
	return pageTemplate.Execute(c, data)
}
