package classify

import "github.com/tmc/langchaingo/llms"

// Intent is the structured record the model extracts from one user message.
// An empty field means the user did not mention it this turn.
type Intent struct {
	Name             string `json:"name"`
	Color            string `json:"color"`
	Size             string `json:"size"`
	CompressionClass string `json:"compression_class"`
	Country          string `json:"country"`
	Manufacturer     string `json:"manufacturer"`
	Price            string `json:"price"`
	Greeting         string `json:"greeting"`
	Contacts         string `json:"contacts"`
	Thank            string `json:"thank"`
	Advice           string `json:"advice"`
	Interest         string `json:"interest"`
	Place            string `json:"place"`
	FSL              string `json:"fsl"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	Cancel           string `json:"cancel"`
}

func stringProperty(description string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
	}
}

// getProductTool mirrors the extraction schema the shop assistant was trained
// against; field descriptions double as few-shot hints for the model.
var getProductTool = llms.Tool{
	Type: "function",
	Function: &llms.FunctionDefinition{
		Name:        "get_product",
		Description: "Extracts the user's intent and the product attributes mentioned in the message.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  stringProperty("which product the user has in mind, e.g. есть гольфы, колготки"),
				"color": stringProperty("what color the user has in mind, e.g. черный"),
				"size":  stringProperty("what size the user has in mind, e.g. 4"),
				"compression_class": stringProperty("If the user specifies compression 1, write in a value of I. " +
					"If the user specifies compression 2, write in value II. In other cases any other values. e.g. компрессия 22 - 27 мм"),
				"country":      stringProperty("which country the user is referring to, e.g. страна производитель Чехия"),
				"manufacturer": stringProperty("which manufacturer the user has in mind, e.g. фирма Calze"),
				"price":        stringProperty("what price the user has in mind. Write in the meaning of the number only, e.g. цена 50."),
				"greeting":     stringProperty("recognize the user's sentence as a greeting, e.g. здравствуйте/привет/добрый день."),
				"contacts":     stringProperty("The user is interested in contacts, e.g. позвонить."),
				"thank":        stringProperty("The user would like to thank, e.g. спасибо."),
				"advice":       stringProperty("User asks for advice, e.g. что посоветуете."),
				"interest": stringProperty("The user is interested in how the product can be purchased, " +
					"e.g. способ купить, как приобрести, как сделать заказ, как оформить заявку"),
				"place": stringProperty("the user is ready to buy or place an order for the product, " +
					"e.g. готов купить, хорошо оставлю заявку, давайте оформим"),
				"fsl":    stringProperty("User wrote his/her Surname First Name Second Name, e.g. Иванов Сергей Андреевич."),
				"phone":  stringProperty("The user wrote his phone number, e.g. +375257903263."),
				"city":   stringProperty("The user wrote his city, e.g. Минск."),
				"cancel": stringProperty("User wants to cancel data collection, e.g. Отмена/Не сейчас."),
			},
		},
	},
}
