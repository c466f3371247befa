package templates

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
)

var validate = validator.New()

// Validate confere o payload contra o schema do template e retorna a
// cópia normalizada (tipos coagidos, defaults aplicados).
//
// A validação é total: todas as falhas de campo são coletadas em uma
// única passada e devolvidas juntas no ValidationError, em ordem
// alfabética de campo. Nenhuma falha individual interrompe as demais.
func (t Template) Validate(dados map[string]any) (map[string]any, error) {
	if dados == nil {
		dados = map[string]any{}
	}

	var fieldErrs []sdkerrors.FieldError
	validated := make(map[string]any, len(dados))

	if t.Schema.RequireNonEmpty && len(dados) == 0 {
		fieldErrs = append(fieldErrs, sdkerrors.FieldError{
			Field:  "dados",
			Reason: "payload não pode ser vazio",
		})
	}

	// Campos desconhecidos são rejeitados, salvo schema com extras.
	for name := range dados {
		if _, ok := t.Schema.Fields[name]; !ok {
			if t.Schema.AllowExtras {
				validated[name] = dados[name]
				continue
			}
			fieldErrs = append(fieldErrs, sdkerrors.FieldError{
				Field:  name,
				Reason: "campo não previsto no schema",
			})
		}
	}

	rules := make(map[string]any)
	candidates := make(map[string]any)

	for name, spec := range t.Schema.Fields {
		raw, present := dados[name]
		if !present {
			if spec.Default != nil {
				validated[name] = spec.Default
				continue
			}
			if spec.Required {
				fieldErrs = append(fieldErrs, sdkerrors.FieldError{
					Field:  name,
					Reason: "campo obrigatório ausente",
				})
			}
			continue
		}

		// String vazia em campo com default equivale a campo ausente.
		if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" && spec.Default != nil {
			validated[name] = spec.Default
			continue
		}

		value, err := coerce(raw, spec.Type)
		if err != nil {
			fieldErrs = append(fieldErrs, sdkerrors.FieldError{Field: name, Reason: err.Error()})
			continue
		}
		validated[name] = value

		if spec.Rule != "" {
			rules[name] = spec.Rule
			candidates[name] = value
		}
	}

	// As regras declarativas (len, min, max, numeric...) são avaliadas
	// pelo validator sobre os valores já coagidos.
	if len(rules) > 0 {
		for name, err := range validate.ValidateMap(candidates, rules) {
			reason := fmt.Sprintf("valor inválido (%v)", err)
			if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
				reason = fmt.Sprintf("falhou na regra '%s'", verrs[0].Tag())
			}
			fieldErrs = append(fieldErrs, sdkerrors.FieldError{Field: name, Reason: reason})
		}
	}

	if len(fieldErrs) > 0 {
		sort.Slice(fieldErrs, func(i, j int) bool { return fieldErrs[i].Field < fieldErrs[j].Field })
		return nil, &sdkerrors.ValidationError{Fields: fieldErrs}
	}

	for name, spec := range t.Schema.Fields {
		if spec.Pad > 0 {
			if v, ok := validated[name].(int); ok {
				validated[name] = fmt.Sprintf("%0*d", spec.Pad, v)
			}
		}
	}
	return validated, nil
}

// coerce converte o valor bruto para o tipo declarado. A conversão segue
// o tipo à risca: um int declarado aceita a string "42", mas rejeita
// "abc" e rejeita floats com parte fracionária.
func coerce(raw any, ft FieldType) (any, error) {
	switch ft {
	case TypeAny:
		return raw, nil

	case TypeString:
		switch v := raw.(type) {
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				return nil, fmt.Errorf("não pode ser vazio")
			}
			return s, nil
		case json.Number:
			return v.String(), nil
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case float64:
			if v == math.Trunc(v) {
				return strconv.FormatInt(int64(v), 10), nil
			}
			return nil, fmt.Errorf("deve ser uma string")
		default:
			return nil, fmt.Errorf("deve ser uma string")
		}

	case TypeInt:
		switch v := raw.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("deve ser um inteiro")
			}
			return int(v), nil
		case json.Number:
			n, err := v.Int64()
			if err != nil {
				return nil, fmt.Errorf("deve ser um inteiro")
			}
			return int(n), nil
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("deve ser um inteiro válido")
			}
			return n, nil
		default:
			return nil, fmt.Errorf("deve ser um inteiro")
		}

	case TypeBool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
		return nil, fmt.Errorf("deve ser um booleano")

	case TypeObject:
		if v, ok := raw.(map[string]any); ok {
			return v, nil
		}
		return nil, fmt.Errorf("deve ser um objeto")

	case TypeArray:
		switch v := raw.(type) {
		case []any:
			if len(v) == 0 {
				return nil, fmt.Errorf("não pode ser uma lista vazia")
			}
			return v, nil
		case []map[string]any:
			if len(v) == 0 {
				return nil, fmt.Errorf("não pode ser uma lista vazia")
			}
			return v, nil
		default:
			return nil, fmt.Errorf("deve ser uma lista")
		}

	default:
		return nil, fmt.Errorf("tipo de schema desconhecido: %s", ft)
	}
}
