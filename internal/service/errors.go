package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	BadGateway          = 502
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExist         = errors.New("用户已存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrUserEmailExist    = errors.New("邮箱已注册")
	ErrPasswordIncorrect = errors.New("密码错误")

	ErrTaskNotFound  = errors.New("任务不存在")
	ErrNoteNotFound  = errors.New("笔记不存在")
	ErrGoalNotFound  = errors.New("学习目标不存在")
	ErrTopicNotFound = errors.New("主题不存在")

	ErrPlatformNotSupported = errors.New("不支持的平台")
	ErrAccountNotFound      = errors.New("尚未绑定该平台账号")
	ErrAccountExist         = errors.New("该平台已绑定账号")
	ErrPlatformUserNotFound = errors.New("平台上不存在该用户名")
	ErrPlatformUnavailable  = errors.New("平台暂时无法访问，请稍后重试")
	ErrPlatformBadData      = errors.New("平台返回了无法解析的数据")
	ErrSyncInProgress       = errors.New("同步正在进行中，请稍后重试")

	UnauthorizedError = errors.New("权限不足")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrUserUsernameExist: BadRequest,
	ErrUserEmailExist:    BadRequest,
	ErrPasswordIncorrect: Unauthorized,

	ErrTaskNotFound:  NotFound,
	ErrNoteNotFound:  NotFound,
	ErrGoalNotFound:  NotFound,
	ErrTopicNotFound: NotFound,

	ErrPlatformNotSupported: BadRequest,
	ErrAccountNotFound:      NotFound,
	ErrAccountExist:         BadRequest,
	ErrPlatformUserNotFound: NotFound,
	ErrPlatformUnavailable:  BadGateway,
	ErrPlatformBadData:      BadGateway,
	ErrSyncInProgress:       Conflict,

	UnauthorizedError: Unauthorized,
	UnExpectedError:   InternalServerError,
}
