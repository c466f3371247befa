package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// FromEnv monta a configuração a partir de variáveis de ambiente,
// usando as tags "env" e "envDefault" da struct. Arquivos .env
// informados são carregados antes (melhor esforço: um .env ausente
// não é erro, pois as variáveis podem já estar no ambiente).
func FromEnv(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("erro ao carregar %s: %w", f, err)
		}
	}

	var cfg Config
	if err := loadStruct(reflect.ValueOf(&cfg).Elem()); err != nil {
		return Config{}, err
	}

	// As três partes compartilham a mesma struct, então as variáveis
	// são resolvidas por papel em vez de por tag.
	if err := loadParty(&cfg.Contratante, "INTEGRA_CONTRATANTE"); err != nil {
		return Config{}, err
	}
	if err := loadParty(&cfg.Contribuinte, "INTEGRA_CONTRIBUINTE"); err != nil {
		return Config{}, err
	}
	if err := loadParty(&cfg.AutorPedidoDados, "INTEGRA_AUTOR_PEDIDO_DADOS"); err != nil {
		return Config{}, err
	}

	env, err := ParseEnvironment(string(cfg.Environment))
	if err != nil {
		return Config{}, err
	}
	cfg.Environment = env

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromFile carrega a configuração de um arquivo YAML e a valida.
func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("erro ao interpretar YAML: %w", err)
	}

	env, err := ParseEnvironment(string(cfg.Environment))
	if err != nil {
		return Config{}, err
	}
	cfg.Environment = env

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadParty(p *types.Party, prefix string) error {
	if numero := os.Getenv(prefix + "_NUMERO"); numero != "" {
		p.Numero = numero
	}
	if tipo := os.Getenv(prefix + "_TIPO"); tipo != "" {
		v, err := strconv.Atoi(tipo)
		if err != nil {
			return fmt.Errorf("variável %s_TIPO inválida: %w", prefix, err)
		}
		p.Tipo = v
	}
	return nil
}

// loadStruct preenche recursivamente os campos taggeados com "env".
// Structs aninhadas sem tag são percorridas; campos sem tag ficam intactos.
func loadStruct(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct && fieldType.Tag.Get("env") == "" {
			if err := loadStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue := os.Getenv(envTag)
		if envValue == "" {
			envValue = fieldType.Tag.Get("envDefault")
		}
		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("variável %s inválida para o campo %s: %w", envTag, fieldType.Name, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)

	default:
		return fmt.Errorf("tipo de campo não suportado: %s", field.Kind())
	}
	return nil
}
