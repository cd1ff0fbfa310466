package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"unisovet-console/internal/domain/appointments"
	"unisovet-console/internal/domain/clients"
	"unisovet-console/internal/domain/pets"
)

const persona = `Você é a Uni, uma assistente virtual amigável e prestativa da clínica veterinária UnisoVet. Seu objetivo é fornecer um excelente atendimento ao cliente.
- Seja concisa, educada e profissional.
- Use os dados fornecidos da clínica para responder às perguntas com precisão.
- Se você não souber a resposta ou se uma solicitação for muito complexa (como diagnósticos médicos), peça educadamente ao usuário para entrar em contato com a clínica diretamente pelo telefone (15) 99999-8888.
- Você não pode realizar ações como atualizar ou excluir registros. Você só pode fornecer informações com base nos dados fornecidos.
- Ao ser questionado sobre agendamentos, consulte as datas e os motivos fornecidos.
- Ao ser questionado sobre animais de estimação, forneça sua espécie, raça e o nome do proprietário.
- Fale em Português do Brasil.`

// BuildContext monta a system instruction a partir do retrato ao vivo das
// coleções. Função pura, chamada uma vez por request de saída — nunca cacheada,
// para a assistente sempre enxergar os dados atuais.
func BuildContext(cs []clients.Client, ps []pets.Pet, as []appointments.Appointment) string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\nAqui estão os dados atuais da clínica em formato JSON:\n")
	writeSection(&b, "Clientes", cs)
	writeSection(&b, "Pets", ps)
	writeSection(&b, "Agendamentos", as)
	return b.String()
}

func writeSection(b *strings.Builder, title string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		data = []byte("[]")
	}
	fmt.Fprintf(b, "\n%s:\n%s\n", title, data)
}
