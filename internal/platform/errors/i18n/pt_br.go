package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown: "Ocorreu um erro inesperado",

		CodeInvalidGameType:   "Tipo de jogo desconhecido",
		CodeSessionIDRequired: "O ID da sessão é obrigatório",
		CodePlayerIDRequired:  "O ID do jogador é obrigatório",
		CodeMissingPayload:    "A mensagem não tem conteúdo",
		CodeHandshakeRequired: "A primeira mensagem do fluxo deve ser um handshake",

		CodeNotFound:              "Nenhum jogo existe com esse ID de sessão",
		CodeSessionAlreadyStarted: "Este jogo já começou",
		CodeSessionNotStarted:     "Este jogo ainda não começou",
		CodePlayerNotInSession:    "Você não é jogador desta partida",
		CodeRegistryUnavailable:   "O servidor de jogos está desligando",
		CodeReplyDropped:          "O servidor de jogos parou antes de responder",
		CodeGameCreateFailed:      "Não foi possível criar o jogo",
		CodeStreamReplaced:        "Você se conectou novamente em outro lugar",
		CodeRateLimited:           "Ações demais, vá com calma",

		CodeLobbyFull:        "A sala está cheia (máximo {{.Max}} jogadores)",
		CodeNotLeader:        "Apenas o líder pode iniciar o jogo",
		CodeNotEnoughPlayers: "São necessários pelo menos {{.Min}} jogadores",

		CodeNotStarted:           "A rodada ainda não foi distribuída",
		CodeNotYourTurn:          "Não é a sua vez",
		CodeAlreadyStaged:        "Outra carta já está preparada",
		CodeNotStaged:            "Prepare uma carta antes de confirmar",
		CodeInvalidSource:        "Escolha a carta da mão ou a carta comprada",
		CodeTargetRequired:       "{{.Card}} precisa de um jogador alvo",
		CodeTargetCardRequired:   "Escolha uma carta para adivinhar",
		CodeInvalidTarget:        "Esse jogador não pode ser alvo",
		CodeInvalidTargetCard:    "Essa carta não pode ser adivinhada",
		CodeCountessMustBePlayed: "A Condessa deve ser jogada junto com o Rei ou um Príncipe",

		CodeInvalidPegIndex:   "Posição do pino fora do intervalo",
		CodeInvalidColor:      "Cor de pino desconhecida",
		CodeRowIncomplete:     "Preencha todos os pinos antes de confirmar",
		CodeRowLengthMismatch: "As linhas têm tamanhos diferentes",
		CodePasswordLocked:    "Sua senha já foi confirmada",
		CodeSideDone:          "Você já descobriu a senha",
	},
}
