package dialog

// Fixed replies of the shop assistant.
const (
	MsgOrderPrompt = "Для оформления заказа, пожалуйста напишите: Ваши ФИО, телефон и город."

	MsgInterest = "Чтобы приобрести товар, Вы можете оставить заявку на него. Для этого потребуются: ФИО, телефон и город проживания."

	MsgAdvice = "Мы рады предложить Вам широкий ассортимент качественных, комфортных и практичных ортопедических изделий " +
		"от ведущих мировых производителей. В нашем салоне также в наличии — корректирующее белье, обувь и стельки, " +
		"корректоры осанки и многое другое. Все товары, которые можно приобрести в ортопедическом салоне, отличаются " +
		"высокой надежностью, превосходно зарекомендовали себя в эксплуатации и пользуются неизменно высоким спросом " +
		"среди покупателей."

	MsgThank = "Благодарим Вас за обращение! Напишите, если Вас интересуют еще какие-то вопросы."

	MsgContacts = "Вы можете позвонить нашим менеджерам по телефону +375 (29) 5629049. Также предоставляем наши адреса " +
		"магазинов: Минск, пр-т Мира, 1, пом.1058 (вход со стороны двора), Минск, ул. Петра Мстиславца 2, Минск, " +
		"ул.Притыцкого, 29, ТЦ Тивали пав. 355, 3 этаж (ст. м. Спортивная)."

	MsgGreeting = "🙌Здравствуйте! Мы рады видеть вас в компании Relaxsan. Напишите, какой товар вас интересует."

	MsgCancel = "Отмена оформления заказа. Вы можете продолжить поиск товаров."

	MsgFoundHeader = "Вот что мне удалось найти по Вашему запросу:\n\n"

	MsgMoreSuffix = "\n\nЯ нашел больше товаров, что Вы запросили. Пожалуйста, уточните детали, я покажу соответсвующие."

	MsgNotFound = "Товары не найдены. Пожалуйста, уточните ваш запрос."

	MsgNotRecognized = "Не удалось распознать запрос. Пожалуйста, напишите снова."

	MsgLeadSent = "Ваша заявка успешно отправлена!"

	MsgLeadFailed = "Произошла ошибка при отправке заявки. Пожалуйста, попробуйте позже."

	MsgLeadIncomplete = "Спасибо! Чтобы завершить оформление заказа, пожалуйста, укажите оставшиеся данные: ФИО, телефон и город."
)
