package model

type Persona string

const (
	PersonaCareerCoach = Persona("キャリアコーチ（仕事・転職の相談）")
	PersonaLifePlanner = Persona("ライフプランナー（お金・将来設計の相談）")
)

const (
	careerCoachPrompt = "あなたはプロのキャリアコーチです。" +
		"相談者の経歴や価値観を丁寧に聞き出しながら、" +
		"日本のビジネス文化を踏まえた現実的なアドバイスを日本語で行ってください。" +
		"専門用語を使いすぎず、具体的な次の一歩が分かる提案をしてください。"
	lifePlannerPrompt = "あなたはファイナンシャルプランナーの専門家です。" +
		"相談者のライフイベント（結婚、出産、教育、老後など）を意識しながら、" +
		"貯蓄や投資、保険などについて中立的な立場で日本語で説明してください。" +
		"具体例と注意点を分かりやすく示し、行動に移しやすい形で助言してください。"

	FallbackPrompt = "あなたは丁寧で親切な日本語のアシスタントです。"
)

var personaPrompts = map[Persona]string{
	PersonaCareerCoach: careerCoachPrompt,
	PersonaLifePlanner: lifePlannerPrompt,
}

// Personas returns the selectable personas in display order.
func Personas() []Persona {
	return []Persona{PersonaCareerCoach, PersonaLifePlanner}
}

// SystemPrompt never fails: labels outside the known set get FallbackPrompt.
func SystemPrompt(persona Persona) string {
	if prompt, ok := personaPrompts[persona]; ok {
		return prompt
	}
	return FallbackPrompt
}

func ParsePersona(s string) Persona {
	return Persona(s)
}
