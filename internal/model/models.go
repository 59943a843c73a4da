package model

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&Team{},
		&Source{},
		&Scenario{},
		&Functionality{},
		&Problem{},
		&ProjectSetting{},
	}
}
