package main

import (
	"fmt"

	"github.com/expr-lang/expr"
)

var mathFunctionNames = map[string]bool{
	"min": true,
	"max": true,
	"sum": true,
	"avg": true,
}

func isMathFunction(name string) bool {
	return mathFunctionNames[name]
}

func argumentToNumber(argument any) (float64, error) {
	switch number := argument.(type) {
	case float64:
		return number, nil
	case int:
		return float64(number), nil
	case int64:
		return float64(number), nil
	default:
		return 0, fmt.Errorf("numeric argument expected, got %T", argument)
	}
}

var calculateMin = func(args ...any) (any, error) {
	minValue, err := argumentToNumber(args[0])
	if err != nil {
		return nil, err
	}

	for _, arg := range args[1:] {
		number, err := argumentToNumber(arg)
		if err != nil {
			return nil, err
		}
		if number < minValue {
			minValue = number
		}
	}
	return minValue, nil
}

var calculateMax = func(args ...any) (any, error) {
	maxValue, err := argumentToNumber(args[0])
	if err != nil {
		return nil, err
	}

	for _, arg := range args[1:] {
		number, err := argumentToNumber(arg)
		if err != nil {
			return nil, err
		}
		if number > maxValue {
			maxValue = number
		}
	}
	return maxValue, nil
}

var calculateSum = func(args ...any) (any, error) {
	sum := 0.0
	for _, arg := range args {
		number, err := argumentToNumber(arg)
		if err != nil {
			return nil, err
		}
		sum += number
	}
	return sum, nil
}

var calculateAvg = func(args ...any) (any, error) {
	sum, err := calculateSum(args...)
	if err != nil {
		return nil, err
	}
	return sum.(float64) / float64(len(args)), nil
}

var minFunction = expr.Function("min", calculateMin)
var maxFunction = expr.Function("max", calculateMax)
var sumFunction = expr.Function("sum", calculateSum)
var avgFunction = expr.Function("avg", calculateAvg)
