package presenter

import "github.com/iamvkosarev/expert-chat/pkg/local"

var (
	TextPageTitle = local.NewSet("専門家チャットデモ", local.NewTrans(local.En, "Expert chat demo"))
	TextTitle     = local.NewSet("💬 専門家チャットWebアプリ", local.NewTrans(local.En, "💬 Expert chat web app"))
	TextOverview  = local.NewSet(
		"入力フォームから質問や相談内容を送信すると、選択した専門家の視点で LLM が回答を生成し、このページに表示します。",
		local.NewTrans(
			local.En,
			"Send a question from the form and the LLM answers from the point of view of the selected expert. "+
				"The answer is shown on this page.",
		),
	)
	TextUsage = []local.TextSet{
		local.NewSet(
			"下のラジオボタンから、LLMに振る舞ってほしい専門家の種類を選びます。",
			local.NewTrans(local.En, "Pick the kind of expert the LLM should act as."),
		),
		local.NewSet(
			"テキストエリアに、相談したい内容や聞きたいことを自由に入力します。",
			local.NewTrans(local.En, "Type what you want to ask in the text area."),
		),
		local.NewSet(
			"「送信」ボタンを押すと、LLM が選択した専門家として回答を返します。",
			local.NewTrans(local.En, "Press \"Send\" and the LLM answers as the selected expert."),
		),
	}
	TextPersonaQuestion = local.NewSet(
		"LLM にどの専門家として振る舞ってほしいですか？",
		local.NewTrans(local.En, "Which expert should the LLM act as?"),
	)
	TextQueryLabel = local.NewSet(
		"相談内容・質問を入力してください：",
		local.NewTrans(local.En, "Enter your question:"),
	)
	TextQueryPlaceholder = local.NewSet(
		"例）IT業界から別の業界へ転職したいのですが、何から始めると良いでしょうか？",
		local.NewTrans(local.En, "e.g. I want to move from IT to another industry. Where should I start?"),
	)
	TextSubmit       = local.NewSet("送信", local.NewTrans(local.En, "Send"))
	TextBusy         = local.NewSet("専門家が考えています...", local.NewTrans(local.En, "The expert is thinking..."))
	TextEmptyWarning = local.NewSet(
		"相談内容が空です。テキストを入力してください。",
		local.NewTrans(local.En, "Your question is empty. Please enter some text."),
	)
	TextAnswerHeading = local.NewSet("🔍 専門家からの回答", local.NewTrans(local.En, "🔍 The expert's answer"))
	TextErrorFormat   = local.NewSet("エラーが発生しました: %s", local.NewTrans(local.En, "An error occurred: %s"))
)
