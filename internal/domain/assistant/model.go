package assistant

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message é um turno do transcript (append-only, nunca editado).
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const (
	// Saudação injetada na primeira abertura do painel, se o transcript
	// ainda estiver vazio.
	Greeting = "Olá! Eu sou a Uni, sua assistente virtual da UnisoVet. Como posso ajudar hoje?"

	// Resposta fixa quando o provedor falha. O erro nunca chega ao usuário.
	Apology = "Desculpe, estou com um problema técnico no momento. Por favor, tente novamente mais tarde."
)
