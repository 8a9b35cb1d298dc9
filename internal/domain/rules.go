package domain

type RuleSection struct {
	Icon  string
	Title string
	Items []string
}

var Rules = []RuleSection{
	{
		Icon:  "file-text",
		Title: "Общие правила",
		Items: []string{
			"Все операции с номерами должны соответствовать действующему законодательству РФ",
			"Продажа номеров осуществляется только вместе с техническими документами",
			"Администрация не несет ответственности за сделки между пользователями",
			"Запрещено размещение недостоверной информации о номерах",
		},
	},
	{
		Icon:  "shopping-cart",
		Title: "Правила покупки",
		Items: []string{
			"Перед покупкой обязательно проверьте подлинность документов",
			"Встречи для осмотра номеров проводите в безопасных местах",
			"Не передавайте деньги до получения всех необходимых документов",
			"При возникновении споров обращайтесь в службу поддержки",
		},
	},
	{
		Icon:  "upload",
		Title: "Правила продажи",
		Items: []string{
			"Указывайте только актуальную информацию о номере",
			"Загружайте качественные фотографии номера и документов",
			"Отвечайте на вопросы покупателей в течение 24 часов",
			"Уведомляйте администрацию о завершении сделки",
		},
	},
	{
		Icon:  "alert-triangle",
		Title: "Ответственность",
		Items: []string{
			"За нарушение правил пользователь может быть заблокирован",
			"Мошенничество и обман других пользователей недопустимы",
			"Администрация оставляет за собой право удалять подозрительные объявления",
			"При серьезных нарушениях информация передается в правоохранительные органы",
		},
	},
}

type Contacts struct {
	Phone string
	Email string
	Hours string
}

var SupportContacts = Contacts{
	Phone: "+7 (800) 123-45-67",
	Email: "support@номера.рф",
	Hours: "Пн-Пт 9:00-18:00",
}
