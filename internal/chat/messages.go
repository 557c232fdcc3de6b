package chat

import "fmt"

// Bot copy for the scripted portions of the conversation.
const (
	// WelcomeMessage opens every conversation.
	WelcomeMessage = "안녕하세요! 저는 파티 플래닝 AI 어시스턴트예요. 완벽한 파티를 함께 계획해보아요! ✨"

	// GeneratingMessage is shown after the last answer while the plan
	// request is in flight.
	GeneratingMessage = "모든 정보를 받았어요! 최고의 파티 플랜을 생성하고 있습니다. 잠시만 기다려주세요... ✨"

	// PlanReadyMessage precedes the generated plan.
	PlanReadyMessage = "완성되었습니다! 맞춤형 파티 플랜을 확인해보세요. 🎉"

	// QuickStartPrompt is shown above the quick-start menu.
	QuickStartPrompt = "어떤 파티를 계획하고 계신가요?"
)

// fallbackResponses are the graceful acknowledgements substituted for a raw
// transport error on general-chat or plan calls.
var fallbackResponses = []string{
	"네, 더 자세히 알려주세요!",
	"흥미롭네요! 어떤 도움이 필요하신가요?",
	"파티 계획에 대해 더 구체적으로 말씀해주시면 더 좋은 제안을 드릴 수 있어요.",
	"좋은 아이디어네요! 함께 계획해보아요.",
}

// FallbackResponse returns a graceful acknowledgement for the n-th failure.
// Deterministic so tests can assert on the exact turn text.
func FallbackResponse(n int) string {
	if n < 0 {
		n = -n
	}
	return fallbackResponses[n%len(fallbackResponses)]
}

// QuickStartAck acknowledges the selected party type.
func QuickStartAck(option string) string {
	return fmt.Sprintf("%s를 선택해주셨군요! 멋진 파티를 만들어보아요. 몇 가지 질문을 통해 완벽한 플랜을 짜드릴게요.", option)
}

// AnswerAck acknowledges a questionnaire answer.
func AnswerAck(answer string) string {
	return fmt.Sprintf("%s 좋네요!", answer)
}
