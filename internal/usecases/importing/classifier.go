package importing

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultCategory é atribuída quando nenhuma palavra-chave casa com a descrição
const DefaultCategory = "Non classificato"

//go:embed categories.yaml
var defaultCategories []byte

type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type classifierConfig struct {
	Default    string     `yaml:"default"`
	Categories []Category `yaml:"categories"`
}

// Classifier atribui categorias por palavra-chave contida na descrição.
// A primeira categoria da lista com uma palavra-chave presente vence.
type Classifier struct {
	fallback   string
	categories []Category
}

func NewClassifier(data []byte) (*Classifier, error) {
	var cfg classifierConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "erro ao ler tabela de categorias")
	}

	if len(cfg.Categories) == 0 {
		return nil, errors.New("tabela de categorias vazia")
	}

	classifier := &Classifier{fallback: strings.TrimSpace(cfg.Default)}
	if classifier.fallback == "" {
		classifier.fallback = DefaultCategory
	}

	for _, category := range cfg.Categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			continue
		}

		keywords := make([]string, 0, len(category.Keywords))
		for _, keyword := range category.Keywords {
			if keyword = strings.ToLower(strings.TrimSpace(keyword)); keyword != "" {
				keywords = append(keywords, keyword)
			}
		}
		classifier.categories = append(classifier.categories, Category{Name: name, Keywords: keywords})
	}

	return classifier, nil
}

// DefaultClassifier usa a tabela embutida no binário
func DefaultClassifier() *Classifier {
	classifier, err := NewClassifier(defaultCategories)
	if err != nil {
		panic(err)
	}
	return classifier
}

// LoadClassifier lê a tabela de um arquivo YAML; caminho vazio usa a tabela embutida
func LoadClassifier(path string) (*Classifier, error) {
	if path == "" {
		return DefaultClassifier(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}

	return NewClassifier(data)
}

func (c *Classifier) Classify(description string) string {
	if strings.TrimSpace(description) == "" {
		return c.fallback
	}

	lower := strings.ToLower(description)
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				return category.Name
			}
		}
	}

	return c.fallback
}

// Categories lista os nomes na ordem de avaliação
func (c *Classifier) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for _, category := range c.categories {
		names = append(names, category.Name)
	}
	return names
}
