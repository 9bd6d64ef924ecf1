package service

import (
	"fmt"
	"regexp"
	"strings"
)

// Input caps applied before interpolating user text into a prompt.
const (
	maxTitleLen = 200
	maxBodyLen  = 6000
)

var (
	overrideRe = regexp.MustCompile(`(?i)(ignore|disregard|forget)\s+(all\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|rules?)`)
	controlRe  = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
)

// sanitizeInput trims, length-caps and neutralizes user-supplied free text so
// it can be interpolated into a prompt template. Code fences and instruction
// override phrases are defanged rather than rejected.
func sanitizeInput(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	s = controlRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "'''")
	s = overrideRe.ReplaceAllString(s, "[removed]")
	runes := []rune(s)
	if len(runes) > maxLen {
		s = strings.TrimSpace(string(runes[:maxLen]))
	}
	return s
}

func questionsPrompt(jobTitle, jobDescription, questionType, difficulty string, count int) string {
	jobTitle = sanitizeInput(jobTitle, maxTitleLen)
	jobDescription = sanitizeInput(jobDescription, maxBodyLen)

	var b strings.Builder
	b.WriteString("You are an experienced technical recruiter preparing a candidate for a job interview.\n")
	fmt.Fprintf(&b, "Generate exactly %d interview questions for the following position.\n\n", count)
	fmt.Fprintf(&b, "Job Title: %s\n", jobTitle)
	fmt.Fprintf(&b, "Job Description:\n---\n%s\n---\n\n", jobDescription)
	if questionType != "" {
		fmt.Fprintf(&b, "All questions must be of type %q.\n", questionType)
	} else {
		b.WriteString("Mix question types across: technical, behavioral, situational, general.\n")
	}
	if difficulty != "" {
		fmt.Fprintf(&b, "All questions must be of difficulty %q.\n", difficulty)
	} else {
		b.WriteString("Mix difficulty levels across: easy, medium, hard.\n")
	}
	b.WriteString("\nRespond with JSON only, no prose, matching exactly this schema:\n")
	b.WriteString(`{"questions":[{"question_text":"...","question_type":"technical|behavioral|situational|general","difficulty_level":"easy|medium|hard","category":"...","explanation":"why an interviewer asks this"}]}`)
	b.WriteString("\n")
	return b.String()
}

func answerPrompt(jobTitle, question, questionType, difficulty string) string {
	jobTitle = sanitizeInput(jobTitle, maxTitleLen)
	question = sanitizeInput(question, maxBodyLen)

	var b strings.Builder
	b.WriteString("You are an experienced interview coach.\n")
	fmt.Fprintf(&b, "Write a strong sample answer for a candidate interviewing for the position of %s.\n\n", jobTitle)
	fmt.Fprintf(&b, "Interview Question:\n---\n%s\n---\n\n", question)
	if questionType != "" {
		fmt.Fprintf(&b, "The question type is %q.\n", questionType)
	}
	if difficulty != "" {
		fmt.Fprintf(&b, "The difficulty level is %q.\n", difficulty)
	}
	b.WriteString("The answer should be concrete, structured, and speakable in under two minutes.\n")
	b.WriteString("\nRespond with JSON only, no prose, matching exactly this schema:\n")
	b.WriteString(`{"answer_text":"...","key_points":["..."],"tips":"delivery advice"}`)
	b.WriteString("\n")
	return b.String()
}

func followUpsPrompt(jobTitle, question, answer string, count int) string {
	jobTitle = sanitizeInput(jobTitle, maxTitleLen)
	question = sanitizeInput(question, maxBodyLen)
	answer = sanitizeInput(answer, maxBodyLen)

	var b strings.Builder
	b.WriteString("You are an interviewer conducting a follow-up round.\n")
	fmt.Fprintf(&b, "The candidate is interviewing for the position of %s.\n\n", jobTitle)
	fmt.Fprintf(&b, "Original Question:\n---\n%s\n---\n\n", question)
	if answer != "" {
		fmt.Fprintf(&b, "Candidate's Answer:\n---\n%s\n---\n\n", answer)
	}
	fmt.Fprintf(&b, "Generate exactly %d probing follow-up questions that dig deeper into the same topic.\n", count)
	b.WriteString("\nRespond with JSON only, no prose, matching exactly this schema:\n")
	b.WriteString(`{"questions":[{"question_text":"...","question_type":"technical|behavioral|situational|general","difficulty_level":"easy|medium|hard","category":"..."}]}`)
	b.WriteString("\n")
	return b.String()
}

func linkedInPrompt(jobTitle, jobDescription, highlights string) string {
	jobTitle = sanitizeInput(jobTitle, maxTitleLen)
	jobDescription = sanitizeInput(jobDescription, maxBodyLen)
	highlights = sanitizeInput(highlights, maxBodyLen)

	var b strings.Builder
	b.WriteString("You are a professional resume and LinkedIn profile writer.\n")
	fmt.Fprintf(&b, "Write a LinkedIn profile blurb for someone targeting the position of %s.\n\n", jobTitle)
	fmt.Fprintf(&b, "Target Job Description:\n---\n%s\n---\n\n", jobDescription)
	if highlights != "" {
		fmt.Fprintf(&b, "Candidate Highlights:\n---\n%s\n---\n\n", highlights)
	}
	b.WriteString("The headline must be under 120 characters. The summary must be written in first person, 3-5 short paragraphs.\n")
	b.WriteString("\nRespond with JSON only, no prose, matching exactly this schema:\n")
	b.WriteString(`{"headline":"...","summary":"...","skills":["..."]}`)
	b.WriteString("\n")
	return b.String()
}
