package services

import "personal-finance/internal/models"

// User-facing notification texts
const (
	MsgIncomeCreated        = "Receita adicionada com sucesso!"
	MsgExpenseCreated       = "Despesa adicionada com sucesso!"
	MsgMissingFields        = "Preencha todos os campos obrigatórios"
	MsgInvalidAmount        = "Valor inválido"
	MsgInvalidField         = "Verifique os dados informados"
	MsgCategoryMismatch     = "A categoria selecionada não corresponde ao tipo da transação"
	MsgTransactionFailed    = "Erro ao adicionar transação"
	MsgCategoryCreated      = "Categoria criada com sucesso!"
	MsgCategoryNameRequired = "Nome da categoria é obrigatório"
	MsgCategoryFailed       = "Erro ao criar categoria"
	MsgCategoryDuplicate    = "Já existe uma categoria com esse nome"
	MsgCategoryInvalidData  = "Dados da categoria inválidos"
	MsgInvalidParent        = "Categoria pai inválida"
	MsgUnknownFunding       = "Conta ou cartão não encontrado"
	MsgInvalidCategory      = "Categoria inválida"
	MsgInvalidReceipt       = "Arquivo de comprovante inválido"
	MsgReceiptUploadFailed  = "Erro ao enviar comprovante"
)

func successMessage(direction string) string {
	if direction == models.DirectionIncome {
		return MsgIncomeCreated
	}
	return MsgExpenseCreated
}
