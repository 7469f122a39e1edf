package services

import "errors"

// 服务层的业务错误，控制器根据错误类别映射到HTTP状态码
var (
	// 认证相关
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotVerified    = errors.New("账户尚未完成邮箱验证")
	ErrEmailTaken         = errors.New("该邮箱已被注册")
	ErrInvalidRole        = errors.New("非法的账户角色")
	ErrUserNotFound       = errors.New("账户不存在")

	// 验证码相关
	ErrCodeFormat  = errors.New("验证码必须为6位数字")
	ErrCodeInvalid = errors.New("验证码错误")
	ErrCodeExpired = errors.New("验证码已过期")

	// 请求与分配相关
	ErrRequestNotFound = errors.New("救援请求不存在")
	ErrRequestIDTaken  = errors.New("请求编号已存在")
	ErrInvalidStatus   = errors.New("非法的请求状态")
	ErrItemNotFound    = errors.New("库存物资不存在")
	ErrQuantityInvalid = errors.New("分配数量必须为非负整数")
	ErrStockConflict   = errors.New("库存不足或已发生变化")
	ErrRestockInvalid  = errors.New("补给数量必须为正整数")

	// 聊天相关
	ErrEmptyChannel = errors.New("频道名称不能为空")
	ErrEmptyMessage = errors.New("消息内容不能为空")
)
