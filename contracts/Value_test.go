package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulaError(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		assert.Equal(t, "#REF!", FormulaError{Category: FormulaErrorRef}.Error())
		assert.Equal(t, "#VALUE!", FormulaError{Category: FormulaErrorValue}.Error())
		assert.Equal(t, "#ARITHM!", FormulaError{Category: FormulaErrorArithmetic}.Error())
		assert.Equal(t, "#ERROR!", FormulaError{}.Error())
	})

	t.Run("equality_on_category", func(t *testing.T) {
		assert.Equal(t, FormulaError{Category: FormulaErrorRef}, FormulaError{Category: FormulaErrorRef})
		assert.NotEqual(t, FormulaError{Category: FormulaErrorRef}, FormulaError{Category: FormulaErrorValue})
	})
}

func TestValue_String(t *testing.T) {
	t.Run("strings_verbatim", func(t *testing.T) {
		assert.Equal(t, "", NewStringValue("").String())
		assert.Equal(t, "hello", NewStringValue("hello").String())
		assert.Equal(t, "=notformula", NewStringValue("=notformula").String())
	})

	t.Run("numbers_in_default_double_format", func(t *testing.T) {
		assert.Equal(t, "5", NewNumberValue(5).String())
		assert.Equal(t, "2.5", NewNumberValue(2.5).String())
		assert.Equal(t, "-0.25", NewNumberValue(-0.25).String())
		assert.Equal(t, "1e+07", NewNumberValue(1e7).String())
		assert.Equal(t, "1.23457e+06", NewNumberValue(1234567).String())
		assert.Equal(t, "0.0001", NewNumberValue(0.0001).String())
	})

	t.Run("errors_as_tokens", func(t *testing.T) {
		assert.Equal(t, "#REF!", NewErrorValue(FormulaErrorRef).String())
		assert.Equal(t, "#VALUE!", NewErrorValue(FormulaErrorValue).String())
		assert.Equal(t, "#ARITHM!", NewErrorValue(FormulaErrorArithmetic).String())
	})

	t.Run("zero_value_is_empty_string", func(t *testing.T) {
		assert.Equal(t, "", Value{}.String())
		assert.Equal(t, StringValueKind, Value{}.Kind)
	})
}
