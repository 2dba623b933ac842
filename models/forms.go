// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldMessages maps "Struct.Field.tag" to the message shown in the form
var fieldMessages = map[string]string{
	"QuizForm.Question.required": "Question must not be empty.",
	"QuizForm.Answer.required":   "Answer must not be empty.",
	"GroupForm.Name.required":    "Name must not be empty.",
}

type QuizForm struct {
	Question string `validate:"required"`
	Answer   string `validate:"required"`
}

func (f *QuizForm) Normalize() {
	f.Question = strings.TrimSpace(f.Question)
	f.Answer = strings.TrimSpace(f.Answer)
}

// Validate returns the messages of every failed constraint, nil if valid
func (f QuizForm) Validate() []string {
	return validationMessages(validate.Struct(f))
}

func (f QuizForm) Quiz(id int64) Quiz {
	return Quiz{ID: id, Question: f.Question, Answer: f.Answer}
}

type GroupForm struct {
	Name    string `validate:"required"`
	QuizIDs []int64
}

func (f *GroupForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
}

func (f GroupForm) Validate() []string {
	return validationMessages(validate.Struct(f))
}

func (f GroupForm) Group(id int64) Group {
	return Group{ID: id, Name: f.Name}
}

func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.StructNamespace() + "." + fe.Tag()
		if msg, ok := fieldMessages[key]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fe.Field()+" is invalid.")
	}
	return messages
}
