package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingValidation_Check(t *testing.T) {
	assert.Equal(t, `The "{{id}}" placeholder is required.`, RequiredPlaceholder("{{id}}").Check("http://x/"))
	assert.Empty(t, RequiredPlaceholder("{{id}}").Check("http://x/{{id}}"))
	assert.Empty(t, RequiredPlaceholder("{{id}}").Check(""))
	assert.Empty(t, PositiveInteger().Check("3"))
	assert.NotEmpty(t, PositiveInteger().Check("-3"))
	assert.NotEmpty(t, MatchingPattern(`^a+$`, "only a").Check("ab"))
	assert.NotEmpty(t, MatchingPattern(`(`, "broken").Check("a"))
	assert.Empty(t, SettingValidation{}.Check("anything"))
}

func TestSettingDefinition_CheckValue(t *testing.T) {
	selectDef := &SettingDefinition{Type: SettingTypeSelect, Options: []SettingOption{{Value: ""}, {Value: "rtc"}}}
	assert.Empty(t, selectDef.CheckValue("rtc"))
	assert.Empty(t, selectDef.CheckValue(""))
	assert.NotEmpty(t, selectDef.CheckValue("jira"))

	required := &SettingDefinition{Type: SettingTypeString, Required: true}
	assert.NotEmpty(t, required.CheckValue(""))
	assert.Empty(t, required.CheckValue("x"))

	assert.NotEmpty(t, (&SettingDefinition{Type: SettingTypeInt}).CheckValue("1.5"))
	assert.Empty(t, (&SettingDefinition{Type: SettingTypeBoolean}).CheckValue("false"))

	batch := &SettingDefinition{Type: SettingTypeInt, Validation: PositiveInteger()}
	assert.NotEmpty(t, batch.CheckValue("0"))
	assert.Empty(t, batch.CheckValue("100"))
}
