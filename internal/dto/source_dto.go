// FILE: internal/dto/source_dto.go
package dto

type CreateSourceRequest struct {
	Code                      string `json:"code" validate:"required,max=16"`
	Name                      string `json:"name" validate:"required,max=32"`
	Letter                    string `json:"letter" validate:"required,len=1"`
	Technology                string `json:"technology" validate:"required,oneof=CUCUMBER POSTMAN"`
	VcsUrl                    string `json:"vcs_url" validate:"required,max=256"`
	DefaultBranch             string `json:"default_branch" validate:"required,max=16"`
	PostmanCountryRootFolders bool   `json:"postman_country_root_folders"`
}

type UpdateSourceRequest struct {
	Code                      string
	Name                      string `json:"name" validate:"required,max=32"`
	Letter                    string `json:"letter" validate:"required,len=1"`
	Technology                string `json:"technology" validate:"required,oneof=CUCUMBER POSTMAN"`
	VcsUrl                    string `json:"vcs_url" validate:"required,max=256"`
	DefaultBranch             string `json:"default_branch" validate:"required,max=16"`
	PostmanCountryRootFolders bool   `json:"postman_country_root_folders"`
}

type SourceResponse struct {
	Id                        int64  `json:"id"`
	Code                      string `json:"code"`
	Name                      string `json:"name"`
	Letter                    string `json:"letter"`
	Technology                string `json:"technology"`
	VcsUrl                    string `json:"vcs_url"`
	DefaultBranch             string `json:"default_branch"`
	DefaultBranchUrl          string `json:"default_branch_url"`
	PostmanCountryRootFolders bool   `json:"postman_country_root_folders"`
}
