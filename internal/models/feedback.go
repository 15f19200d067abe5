package models

// Feedback is the evaluation result attached to a completed project.
// The score range 1-10 is a contract on the generator's response, not
// enforced here.
type Feedback struct {
	Score      int      `json:"score"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Advice     string   `json:"advice"`
	IsSuccess  bool     `json:"isSuccess"`
}
